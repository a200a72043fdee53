package database

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"financas/models"
)

// CreateAccount 创建账户
// 账户类型以标签传入，内部解析为枚举 id。引用的用户不存在时返回
// ErrNotFound（仓储层主动校验，不依赖存储引擎的外键），同一用户下
// 账户名重复时返回 ErrConflict。
func CreateAccount(db *gorm.DB, userID uint, name, accountTypeLabel string, initialBalance decimal.Decimal) (uint, error) {
	typeID, err := ResolveEnum(EnumAccountType, accountTypeLabel)
	if err != nil {
		return 0, err
	}

	var id uint
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := userExists(tx, userID); err != nil {
			return err
		}
		account := models.Account{
			UserID:         userID,
			AccountName:    name,
			AccountTypeID:  typeID,
			CurrentBalance: initialBalance,
		}
		if err := tx.Create(&account).Error; err != nil {
			return translateError(err)
		}
		id = account.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
