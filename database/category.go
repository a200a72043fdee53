package database

import (
	"fmt"

	"gorm.io/gorm"

	"financas/models"
)

// CreateCategory 创建分类
// userID 为 nil 表示全局共享分类。同一用户下名称加类型重复时返回
// ErrConflict。
func CreateCategory(db *gorm.DB, userID *uint, name, categoryTypeLabel string) (uint, error) {
	typeID, err := ResolveEnum(EnumCategoryType, categoryTypeLabel)
	if err != nil {
		return 0, err
	}

	var id uint
	err = db.Transaction(func(tx *gorm.DB) error {
		if userID != nil {
			if err := userExists(tx, *userID); err != nil {
				return err
			}
		}
		category := models.Category{
			UserID:         userID,
			CategoryName:   name,
			CategoryTypeID: typeID,
		}
		if err := tx.Create(&category).Error; err != nil {
			return translateError(err)
		}
		id = category.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// categoryVisible 校验分类对用户可见（属于该用户或为全局分类）
func categoryVisible(db *gorm.DB, categoryID, userID uint) error {
	var n int64
	if err := db.Model(&models.Category{}).
		Where("id = ? AND (user_id = ? OR user_id IS NULL)", categoryID, userID).
		Count(&n).Error; err != nil {
		return translateError(err)
	}
	if n == 0 {
		return fmt.Errorf("分类 %d 对用户 %d 不可见: %w", categoryID, userID, ErrValidation)
	}
	return nil
}
