package database

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"financas/models"
)

// TransactionFilter 交易列表的可选过滤条件，零值表示不过滤
type TransactionFilter struct {
	UserID     *uint
	AccountID  *uint
	CategoryID *uint
	// 日期闭区间，格式 2006-01-02，空串表示不限
	StartDate string
	EndDate   string
}

// CreateTransaction 创建交易记录
// 校验账户属于该用户、分类对该用户可见，否则返回 ErrValidation 且不
// 写入任何行。校验与插入放在同一个事务里，保证原子性。
func CreateTransaction(db *gorm.DB, userID, accountID, categoryID uint, date string, amount decimal.Decimal, typeLabel, description string) (uint, error) {
	typeID, err := ResolveEnum(EnumTransactionType, typeLabel)
	if err != nil {
		return 0, err
	}

	var id uint
	err = db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Account{}).
			Where("id = ? AND user_id = ?", accountID, userID).
			Count(&n).Error; err != nil {
			return translateError(err)
		}
		if n == 0 {
			return fmt.Errorf("账户 %d 不属于用户 %d: %w", accountID, userID, ErrValidation)
		}
		if err := categoryVisible(tx, categoryID, userID); err != nil {
			return err
		}

		transaction := models.Transaction{
			UserID:            userID,
			AccountID:         accountID,
			CategoryID:        categoryID,
			TransactionDate:   date,
			Amount:            amount,
			TransactionTypeID: typeID,
			Description:       description,
		}
		if err := tx.Create(&transaction).Error; err != nil {
			return translateError(err)
		}
		id = transaction.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListTransactions 按过滤条件列出交易，按 id 升序保证结果确定
func ListTransactions(db *gorm.DB, filter TransactionFilter) ([]models.Transaction, error) {
	query := db.Model(&models.Transaction{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.StartDate != "" {
		query = query.Where("transaction_date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		query = query.Where("transaction_date <= ?", filter.EndDate)
	}

	var transactions []models.Transaction
	if err := query.Order("id ASC").Find(&transactions).Error; err != nil {
		return nil, translateError(err)
	}
	return transactions, nil
}
