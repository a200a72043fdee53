package models

// 枚举表：一组封闭的类型标签，入库后以自增 id 作为代理键。
// 建表后由 database.Init 幂等写入固定取值，重复执行不产生重复行。

// AccountType 账户类型枚举
type AccountType struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	AccountType string `json:"account_type" gorm:"column:account_type;size:50;not null;uniqueIndex"`
}

// TableName 设置表名
func (AccountType) TableName() string {
	return "account_type_enum"
}

// CategoryType 分类类型枚举
type CategoryType struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	CategoryType string `json:"category_type" gorm:"column:category_type;size:50;not null;uniqueIndex"`
}

func (CategoryType) TableName() string {
	return "category_type_enum"
}

// TransactionType 交易类型枚举
type TransactionType struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	TransactionType string `json:"transaction_type" gorm:"column:transaction_type;size:50;not null;uniqueIndex"`
}

func (TransactionType) TableName() string {
	return "transaction_type_enum"
}

// InvestmentType 投资类型枚举
type InvestmentType struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	InvestmentType string `json:"investment_type" gorm:"column:investment_type;size:50;not null;uniqueIndex"`
}

func (InvestmentType) TableName() string {
	return "investment_type_enum"
}

// InvestmentTransactionType 投资交易类型枚举
type InvestmentTransactionType struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	TransactionType string `json:"transaction_type" gorm:"column:transaction_type;size:50;not null;uniqueIndex"`
}

func (InvestmentTransactionType) TableName() string {
	return "investment_transaction_type_enum"
}

// 常用枚举标签常量
const (
	AccountTypeChecking   = "Checking"
	AccountTypeSavings    = "Savings"
	AccountTypeCreditCard = "Credit Card"
	AccountTypeInvestment = "Investment"
	AccountTypeOther      = "Other"

	CategoryTypeIncome  = "Income"
	CategoryTypeExpense = "Expense"

	TransactionTypeIncome   = "Income"
	TransactionTypeExpense  = "Expense"
	TransactionTypeTransfer = "Transfer"
)

// GetAccountTypes 获取所有账户类型标签
func GetAccountTypes() []string {
	return []string{
		AccountTypeChecking,
		AccountTypeSavings,
		AccountTypeCreditCard,
		AccountTypeInvestment,
		AccountTypeOther,
	}
}

// GetCategoryTypes 获取所有分类类型标签
func GetCategoryTypes() []string {
	return []string{CategoryTypeIncome, CategoryTypeExpense}
}

// GetTransactionTypes 获取所有交易类型标签
func GetTransactionTypes() []string {
	return []string{
		TransactionTypeIncome,
		TransactionTypeExpense,
		TransactionTypeTransfer,
	}
}

// GetInvestmentTypes 获取所有投资类型标签
func GetInvestmentTypes() []string {
	return []string{
		"Stock",
		"Bond",
		"Mutual Fund",
		"ETF",
		"Cryptocurrency",
		"Real Estate",
		"Other",
	}
}

// GetInvestmentTransactionTypes 获取所有投资交易类型标签
func GetInvestmentTransactionTypes() []string {
	return []string{"Buy", "Sell", "Dividend", "Interest", "Fee"}
}
