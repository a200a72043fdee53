package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"financas/config"
	"financas/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接并保证库结构就绪
// 建表和枚举值写入都是幂等的，重复执行不会报错也不会产生重复行。
func Init(cfg *config.Config) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.Database.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("创建数据目录失败: %w", err)
		}
	}

	gormLogger := logger.Default
	if !cfg.Database.LogMode {
		gormLogger = gormLogger.LogMode(logger.Silent)
	}

	db, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(10)

	// SQLite 性能与约束设置
	_, _ = sqlDB.Exec("PRAGMA journal_mode = WAL;")
	_, _ = sqlDB.Exec("PRAGMA synchronous = NORMAL;")
	_, _ = sqlDB.Exec("PRAGMA foreign_keys = ON;")

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	if err := seedEnums(db); err != nil {
		return nil, err
	}
	if err := loadEnumCache(db); err != nil {
		return nil, err
	}

	DB = db
	log.Println("数据库初始化成功")
	return db, nil
}

// AutoMigrate 迁移全部数据表（枚举表 + 实体表 + 对外流水表）
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.AccountType{},
		&models.CategoryType{},
		&models.TransactionType{},
		&models.InvestmentType{},
		&models.InvestmentTransactionType{},
		&models.User{},
		&models.Account{},
		&models.Category{},
		&models.Transaction{},
		&models.Budget{},
		&models.Investment{},
		&models.InvestmentTransaction{},
		&models.Transacao{},
	); err != nil {
		return fmt.Errorf("%w: 迁移数据表失败: %v", ErrStorage, err)
	}
	return nil
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
