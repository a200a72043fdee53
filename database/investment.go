package database

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"financas/models"
)

// CreateInvestment 创建投资持仓
// accountID 可为 nil。代码在同一用户下重复时返回 ErrConflict，
// 账户不属于该用户时返回 ErrValidation。
func CreateInvestment(db *gorm.DB, userID uint, accountID *uint, name, symbol, investmentTypeLabel string, currentValue decimal.Decimal) (uint, error) {
	typeID, err := ResolveEnum(EnumInvestmentType, investmentTypeLabel)
	if err != nil {
		return 0, err
	}

	var id uint
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := userExists(tx, userID); err != nil {
			return err
		}
		if accountID != nil {
			var n int64
			if err := tx.Model(&models.Account{}).
				Where("id = ? AND user_id = ?", *accountID, userID).
				Count(&n).Error; err != nil {
				return translateError(err)
			}
			if n == 0 {
				return fmt.Errorf("账户 %d 不属于用户 %d: %w", *accountID, userID, ErrValidation)
			}
		}
		investment := models.Investment{
			UserID:           userID,
			AccountID:        accountID,
			InvestmentName:   name,
			Symbol:           symbol,
			InvestmentTypeID: typeID,
			CurrentValue:     currentValue,
		}
		if err := tx.Create(&investment).Error; err != nil {
			return translateError(err)
		}
		id = investment.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CreateInvestmentTransaction 创建投资交易流水
// 引用的持仓不存在时返回 ErrNotFound。
func CreateInvestmentTransaction(db *gorm.DB, investmentID uint, date, typeLabel string, quantity, pricePerUnit, totalAmount decimal.Decimal, description string) (uint, error) {
	typeID, err := ResolveEnum(EnumInvestmentTransactionType, typeLabel)
	if err != nil {
		return 0, err
	}

	var id uint
	err = db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Investment{}).Where("id = ?", investmentID).Count(&n).Error; err != nil {
			return translateError(err)
		}
		if n == 0 {
			return fmt.Errorf("持仓 %d 不存在: %w", investmentID, ErrNotFound)
		}
		record := models.InvestmentTransaction{
			InvestmentID:      investmentID,
			TransactionDate:   date,
			TransactionTypeID: typeID,
			Quantity:          quantity,
			PricePerUnit:      pricePerUnit,
			TotalAmount:       totalAmount,
			Description:       description,
		}
		if err := tx.Create(&record).Error; err != nil {
			return translateError(err)
		}
		id = record.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
