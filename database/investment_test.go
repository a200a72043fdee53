package database

import (
	"testing"

	"financas/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInvestment(t *testing.T) {
	db := newTestDB(t)
	userID, accountID, _ := fixtureUser(t, db, "alice")

	id, err := CreateInvestment(db, userID, &accountID, "Petrobras", "PETR4", "Stock", decimal.NewFromInt(10000))
	require.NoError(t, err)
	assert.NotZero(t, id)

	// 代码在同一用户下唯一
	_, err = CreateInvestment(db, userID, nil, "Petrobras PN", "PETR4", "Stock", decimal.Zero)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateInvestmentCrossUserAccount(t *testing.T) {
	db := newTestDB(t)
	alice, _, _ := fixtureUser(t, db, "alice")
	_, bobAccount, _ := fixtureUser(t, db, "bob")

	_, err := CreateInvestment(db, alice, &bobAccount, "Petrobras", "PETR4", "Stock", decimal.Zero)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateInvestmentTransaction(t *testing.T) {
	db := newTestDB(t)
	userID, _, _ := fixtureUser(t, db, "alice")

	investmentID, err := CreateInvestment(db, userID, nil, "Tesouro Selic", "SELIC", "Bond", decimal.NewFromInt(5000))
	require.NoError(t, err)

	id, err := CreateInvestmentTransaction(db, investmentID, "2024-03-15", "Buy",
		decimal.NewFromInt(10), decimal.NewFromFloat(102.50), decimal.NewFromInt(1025), "aporte mensal")
	require.NoError(t, err)

	var record models.InvestmentTransaction
	require.NoError(t, db.First(&record, id).Error)
	assert.True(t, record.TotalAmount.Equal(decimal.NewFromInt(1025)))
}

func TestCreateInvestmentTransactionMissingInvestment(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateInvestmentTransaction(db, 9999, "2024-03-15", "Buy",
		decimal.Zero, decimal.Zero, decimal.NewFromInt(100), "")
	assert.ErrorIs(t, err, ErrNotFound)
}
