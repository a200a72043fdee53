package service

import (
	"bytes"
	"path/filepath"
	"testing"

	"financas/config"
	"financas/database"
	"financas/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")},
	}
	db, err := database.Init(cfg)
	require.NoError(t, err)
	return db
}

func TestSeed(t *testing.T) {
	db := newTestDB(t)
	gofakeit.Seed(11)

	seedCfg := config.SeedConfig{
		Users:               2,
		AccountsPerUser:     1,
		CategoriesPerUser:   2,
		TransactionsPerUser: 5,
	}
	require.NoError(t, Seed(db, seedCfg))

	var users, accounts, investments int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Account{}).Count(&accounts)
	db.Model(&models.Investment{}).Count(&investments)
	assert.Equal(t, int64(2), users)
	assert.Equal(t, int64(2), accounts)
	assert.Equal(t, int64(2), investments)

	// 每个用户固定 M 条交易，批量写入无丢失
	transactions, err := database.ListTransactions(db, database.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, transactions, 2*5)
}

func TestDump(t *testing.T) {
	db := newTestDB(t)

	_, err := database.CreateUser(db, "alice", "alice@example.com", "hash")
	require.NoError(t, err)
	_, err = database.CreateTransacao(db, "Almoço", 23.50, models.TipoDespesa, "2024-03-15")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Dump(db, &buf))

	out := buf.String()
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "Almoço")
	assert.Contains(t, out, "用户")
}
