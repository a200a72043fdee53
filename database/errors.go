package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// 仓储层错误分类。所有写读操作把底层存储错误收敛为以下四类，
// 调用方用 errors.Is 判断类别，不需要感知 gorm/sqlite 的原始错误。
var (
	// ErrConflict 唯一约束冲突
	ErrConflict = errors.New("记录已存在")
	// ErrNotFound 引用的行或枚举标签不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrValidation 业务规则校验失败（如跨用户引用）
	ErrValidation = errors.New("数据校验失败")
	// ErrStorage 存储引擎故障（磁盘、权限、损坏）
	ErrStorage = errors.New("存储引擎错误")
)

// translateError 把 gorm 翻译后的存储错误映射为统一分类
// 依赖 gorm.Config.TranslateError，重复键和外键违规会以哨兵错误出现。
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	default:
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
}
