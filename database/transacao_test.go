package database

import (
	"testing"

	"financas/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransacao(t *testing.T) {
	db := newTestDB(t)

	id, err := CreateTransacao(db, "Almoço", 23.50, models.TipoDespesa, "2024-03-15")
	require.NoError(t, err)
	assert.NotZero(t, id)

	transacoes, err := ListTransacoes(db)
	require.NoError(t, err)
	require.Len(t, transacoes, 1)
	assert.Equal(t, "Almoço", transacoes[0].Descricao)
	assert.Equal(t, 23.50, transacoes[0].Valor)
	assert.Equal(t, models.TipoDespesa, transacoes[0].Tipo)
}

func TestCreateTransacaoInvalidTipo(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateTransacao(db, "Almoço", 23.50, "investimento", "2024-03-15")
	assert.ErrorIs(t, err, ErrValidation)

	// 校验失败不写入
	transacoes, err := ListTransacoes(db)
	require.NoError(t, err)
	assert.Empty(t, transacoes)
}

func TestListTransacoesOrder(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateTransacao(db, "Salário", 5000, models.TipoReceita, "2024-03-01")
	require.NoError(t, err)
	_, err = CreateTransacao(db, "Mercado", 320.75, models.TipoDespesa, "2024-03-02")
	require.NoError(t, err)

	transacoes, err := ListTransacoes(db)
	require.NoError(t, err)
	require.Len(t, transacoes, 2)
	assert.Less(t, transacoes[0].ID, transacoes[1].ID)
	assert.Equal(t, "Salário", transacoes[0].Descricao)
}
