package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentTransaction 投资交易流水模型
type InvestmentTransaction struct {
	ID                uint                      `json:"id" gorm:"primaryKey"`
	InvestmentID      uint                      `json:"investment_id" gorm:"not null;index"`
	TransactionDate   string                    `json:"transaction_date" gorm:"size:10;not null"`
	TransactionTypeID uint                      `json:"transaction_type_id" gorm:"not null"`
	Quantity          decimal.Decimal           `json:"quantity" gorm:"type:decimal(18,8)"`
	PricePerUnit      decimal.Decimal           `json:"price_per_unit" gorm:"type:decimal(18,8)"`
	TotalAmount       decimal.Decimal           `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	Description       string                    `json:"description" gorm:"size:255"`
	CreatedAt         time.Time                 `json:"created_at"`
	UpdatedAt         time.Time                 `json:"updated_at"`
	Investment        Investment                `json:"-" gorm:"foreignKey:InvestmentID"`
	TransactionType   InvestmentTransactionType `json:"-" gorm:"foreignKey:TransactionTypeID"`
}

// TableName 设置表名
func (InvestmentTransaction) TableName() string {
	return "investment_transactions"
}
