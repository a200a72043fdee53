package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout 交易日期的存储格式（同原库的 TEXT 日期列）
const DateLayout = "2006-01-02"

// Transaction 交易记录模型
type Transaction struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	UserID            uint            `json:"user_id" gorm:"not null;index"`
	AccountID         uint            `json:"account_id" gorm:"not null;index"`
	CategoryID        uint            `json:"category_id" gorm:"not null;index"`
	TransactionDate   string          `json:"transaction_date" gorm:"size:10;not null"`
	Amount            decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	TransactionTypeID uint            `json:"transaction_type_id" gorm:"not null"`
	Description       string          `json:"description" gorm:"size:255"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	User              User            `json:"-" gorm:"foreignKey:UserID"`
	Account           Account         `json:"-" gorm:"foreignKey:AccountID"`
	Category          Category        `json:"-" gorm:"foreignKey:CategoryID"`
	TransactionType   TransactionType `json:"-" gorm:"foreignKey:TransactionTypeID"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}
