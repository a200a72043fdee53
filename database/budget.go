package database

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"financas/models"
)

// CreateBudget 创建预算
// month 格式为 2006-01。同一用户同一分类同一月份重复时返回
// ErrConflict，分类对用户不可见时返回 ErrValidation。
func CreateBudget(db *gorm.DB, userID, categoryID uint, month string, amount decimal.Decimal) (uint, error) {
	if _, err := time.Parse(models.MonthLayout, month); err != nil {
		return 0, fmt.Errorf("月份格式应为 %s: %w", models.MonthLayout, ErrValidation)
	}

	var id uint
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := userExists(tx, userID); err != nil {
			return err
		}
		if err := categoryVisible(tx, categoryID, userID); err != nil {
			return err
		}
		budget := models.Budget{
			UserID:       userID,
			CategoryID:   categoryID,
			BudgetMonth:  month,
			BudgetAmount: amount,
		}
		if err := tx.Create(&budget).Error; err != nil {
			return translateError(err)
		}
		id = budget.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
