package database

import (
	"fmt"

	"financas/models"

	"gorm.io/gorm"
)

// CreateUser 创建用户
// 用户名或邮箱已存在时返回 ErrConflict。
func CreateUser(db *gorm.DB, username, email, passwordHash string) (uint, error) {
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := db.Create(&user).Error; err != nil {
		return 0, translateError(err)
	}
	return user.ID, nil
}

// userExists 校验用户是否存在
func userExists(db *gorm.DB, userID uint) error {
	var n int64
	if err := db.Model(&models.User{}).Where("id = ?", userID).Count(&n).Error; err != nil {
		return translateError(err)
	}
	if n == 0 {
		return fmt.Errorf("用户 %d 不存在: %w", userID, ErrNotFound)
	}
	return nil
}
