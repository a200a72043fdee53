package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment 投资持仓模型
// AccountID 可为空：持仓不一定挂在某个账户下。
// 代码（symbol）在同一用户下唯一。
type Investment struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	UserID           uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_investments_user_symbol"`
	AccountID        *uint           `json:"account_id" gorm:"index"`
	InvestmentName   string          `json:"investment_name" gorm:"size:100;not null"`
	Symbol           string          `json:"symbol" gorm:"size:20;uniqueIndex:idx_investments_user_symbol"`
	InvestmentTypeID uint            `json:"investment_type_id" gorm:"not null"`
	CurrentValue     decimal.Decimal `json:"current_value" gorm:"type:decimal(12,2);not null"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	User             User            `json:"-" gorm:"foreignKey:UserID"`
	Account          *Account        `json:"-" gorm:"foreignKey:AccountID"`
	InvestmentType   InvestmentType  `json:"-" gorm:"foreignKey:InvestmentTypeID"`
}

// TableName 设置表名
func (Investment) TableName() string {
	return "investments"
}
