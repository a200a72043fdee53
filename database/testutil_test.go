package database

import (
	"path/filepath"
	"testing"

	"financas/config"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB 在临时目录建一个真实的 sqlite 库，表结构和枚举值已就绪
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")},
	}
	db, err := Init(cfg)
	require.NoError(t, err)
	return db
}
