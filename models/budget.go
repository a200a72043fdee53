package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthLayout 预算月份的存储格式
const MonthLayout = "2006-01"

// Budget 预算模型，同一用户同一分类每个月份只能有一条
type Budget struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	UserID       uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_budgets_user_category_month"`
	CategoryID   uint            `json:"category_id" gorm:"not null;uniqueIndex:idx_budgets_user_category_month"`
	BudgetMonth  string          `json:"budget_month" gorm:"size:7;not null;uniqueIndex:idx_budgets_user_category_month"`
	BudgetAmount decimal.Decimal `json:"budget_amount" gorm:"type:decimal(12,2);not null"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	User         User            `json:"-" gorm:"foreignKey:UserID"`
	Category     Category        `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName 设置表名
func (Budget) TableName() string {
	return "budgets"
}
