package database

import (
	"fmt"

	"financas/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnumTable 枚举表的类型标识
// 用类型化的枚举替代按表名字符串分发，未知表名在编译期就不可能出现。
type EnumTable int

const (
	// EnumAccountType 账户类型表
	EnumAccountType EnumTable = iota
	// EnumCategoryType 分类类型表
	EnumCategoryType
	// EnumTransactionType 交易类型表
	EnumTransactionType
	// EnumInvestmentType 投资类型表
	EnumInvestmentType
	// EnumInvestmentTransactionType 投资交易类型表
	EnumInvestmentTransactionType
)

// String 返回枚举表在库中的表名
func (t EnumTable) String() string {
	switch t {
	case EnumAccountType:
		return "account_type_enum"
	case EnumCategoryType:
		return "category_type_enum"
	case EnumTransactionType:
		return "transaction_type_enum"
	case EnumInvestmentType:
		return "investment_type_enum"
	case EnumInvestmentTransactionType:
		return "investment_transaction_type_enum"
	}
	return "unknown"
}

// 启动时一次性加载的标签到 id 映射，此后只读，省去每次插入前的查库往返
var enumIDs map[EnumTable]map[string]uint

// seedEnums 幂等写入五张枚举表的固定取值
// 以标签唯一索引做 on conflict do nothing，重复执行是空操作。
func seedEnums(db *gorm.DB) error {
	accountTypes := make([]models.AccountType, 0, len(models.GetAccountTypes()))
	for _, label := range models.GetAccountTypes() {
		accountTypes = append(accountTypes, models.AccountType{AccountType: label})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&accountTypes).Error; err != nil {
		return fmt.Errorf("%w: 写入账户类型失败: %v", ErrStorage, err)
	}

	categoryTypes := make([]models.CategoryType, 0, len(models.GetCategoryTypes()))
	for _, label := range models.GetCategoryTypes() {
		categoryTypes = append(categoryTypes, models.CategoryType{CategoryType: label})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&categoryTypes).Error; err != nil {
		return fmt.Errorf("%w: 写入分类类型失败: %v", ErrStorage, err)
	}

	transactionTypes := make([]models.TransactionType, 0, len(models.GetTransactionTypes()))
	for _, label := range models.GetTransactionTypes() {
		transactionTypes = append(transactionTypes, models.TransactionType{TransactionType: label})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&transactionTypes).Error; err != nil {
		return fmt.Errorf("%w: 写入交易类型失败: %v", ErrStorage, err)
	}

	investmentTypes := make([]models.InvestmentType, 0, len(models.GetInvestmentTypes()))
	for _, label := range models.GetInvestmentTypes() {
		investmentTypes = append(investmentTypes, models.InvestmentType{InvestmentType: label})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&investmentTypes).Error; err != nil {
		return fmt.Errorf("%w: 写入投资类型失败: %v", ErrStorage, err)
	}

	investmentTxTypes := make([]models.InvestmentTransactionType, 0, len(models.GetInvestmentTransactionTypes()))
	for _, label := range models.GetInvestmentTransactionTypes() {
		investmentTxTypes = append(investmentTxTypes, models.InvestmentTransactionType{TransactionType: label})
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&investmentTxTypes).Error; err != nil {
		return fmt.Errorf("%w: 写入投资交易类型失败: %v", ErrStorage, err)
	}
	return nil
}

// loadEnumCache 把五张枚举表读入内存映射
func loadEnumCache(db *gorm.DB) error {
	cache := make(map[EnumTable]map[string]uint, 5)

	var accountTypes []models.AccountType
	if err := db.Find(&accountTypes).Error; err != nil {
		return translateError(err)
	}
	cache[EnumAccountType] = make(map[string]uint, len(accountTypes))
	for _, row := range accountTypes {
		cache[EnumAccountType][row.AccountType] = row.ID
	}

	var categoryTypes []models.CategoryType
	if err := db.Find(&categoryTypes).Error; err != nil {
		return translateError(err)
	}
	cache[EnumCategoryType] = make(map[string]uint, len(categoryTypes))
	for _, row := range categoryTypes {
		cache[EnumCategoryType][row.CategoryType] = row.ID
	}

	var transactionTypes []models.TransactionType
	if err := db.Find(&transactionTypes).Error; err != nil {
		return translateError(err)
	}
	cache[EnumTransactionType] = make(map[string]uint, len(transactionTypes))
	for _, row := range transactionTypes {
		cache[EnumTransactionType][row.TransactionType] = row.ID
	}

	var investmentTypes []models.InvestmentType
	if err := db.Find(&investmentTypes).Error; err != nil {
		return translateError(err)
	}
	cache[EnumInvestmentType] = make(map[string]uint, len(investmentTypes))
	for _, row := range investmentTypes {
		cache[EnumInvestmentType][row.InvestmentType] = row.ID
	}

	var investmentTxTypes []models.InvestmentTransactionType
	if err := db.Find(&investmentTxTypes).Error; err != nil {
		return translateError(err)
	}
	cache[EnumInvestmentTransactionType] = make(map[string]uint, len(investmentTxTypes))
	for _, row := range investmentTxTypes {
		cache[EnumInvestmentTransactionType][row.TransactionType] = row.ID
	}

	enumIDs = cache
	return nil
}

// ResolveEnum 把枚举标签解析为代理键 id
// 标签不在封闭集合内时返回 ErrNotFound。
func ResolveEnum(table EnumTable, label string) (uint, error) {
	if enumIDs == nil {
		return 0, fmt.Errorf("%w: 枚举缓存未初始化，请先调用 Init", ErrStorage)
	}
	id, ok := enumIDs[table][label]
	if !ok {
		return 0, fmt.Errorf("枚举表 %s 中没有标签 %q: %w", table, label, ErrNotFound)
	}
	return id, nil
}
