package models

import (
	"time"
)

// Category 分类模型
// UserID 为空表示全局共享分类，对所有用户可见。
// 名称加类型在同一用户下唯一。
type Category struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	UserID         *uint        `json:"user_id" gorm:"uniqueIndex:idx_categories_user_name_type"`
	CategoryName   string       `json:"category_name" gorm:"size:100;not null;uniqueIndex:idx_categories_user_name_type"`
	CategoryTypeID uint         `json:"category_type_id" gorm:"not null;uniqueIndex:idx_categories_user_name_type"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	User           *User        `json:"-" gorm:"foreignKey:UserID"`
	CategoryType   CategoryType `json:"-" gorm:"foreignKey:CategoryTypeID"`
}

// TableName 设置表名
func (Category) TableName() string {
	return "categories"
}
