package database

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBudget(t *testing.T) {
	db := newTestDB(t)
	userID, _, categoryID := fixtureUser(t, db, "alice")

	id, err := CreateBudget(db, userID, categoryID, "2024-03", decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.NotZero(t, id)

	// 同用户同分类同月份唯一
	_, err = CreateBudget(db, userID, categoryID, "2024-03", decimal.NewFromInt(600))
	assert.ErrorIs(t, err, ErrConflict)

	// 换个月份可以
	_, err = CreateBudget(db, userID, categoryID, "2024-04", decimal.NewFromInt(600))
	assert.NoError(t, err)
}

func TestCreateBudgetBadMonth(t *testing.T) {
	db := newTestDB(t)
	userID, _, categoryID := fixtureUser(t, db, "alice")

	_, err := CreateBudget(db, userID, categoryID, "March 2024", decimal.NewFromInt(500))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBudgetInvisibleCategory(t *testing.T) {
	db := newTestDB(t)
	alice, _, _ := fixtureUser(t, db, "alice")
	_, _, bobCategory := fixtureUser(t, db, "bob")

	_, err := CreateBudget(db, alice, bobCategory, "2024-03", decimal.NewFromInt(500))
	assert.ErrorIs(t, err, ErrValidation)
}
