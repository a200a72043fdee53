package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account 账户模型，账户名在同一用户下唯一
type Account struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	UserID         uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_accounts_user_name"`
	AccountName    string          `json:"account_name" gorm:"size:100;not null;uniqueIndex:idx_accounts_user_name"`
	AccountTypeID  uint            `json:"account_type_id" gorm:"not null;index"`
	CurrentBalance decimal.Decimal `json:"current_balance" gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	User           User            `json:"-" gorm:"foreignKey:UserID"`
	AccountType    AccountType     `json:"-" gorm:"foreignKey:AccountTypeID"`
}

// TableName 设置表名
func (Account) TableName() string {
	return "accounts"
}
