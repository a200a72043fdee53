package database

import (
	"fmt"

	"gorm.io/gorm"

	"financas/models"
)

// CreateTransacao 向对外流水表写入一条记录
// tipo 必须是 receita/despesa 之一，否则返回 ErrValidation。
func CreateTransacao(db *gorm.DB, descricao string, valor float64, tipo, data string) (uint, error) {
	valid := false
	for _, t := range models.GetTipos() {
		if tipo == t {
			valid = true
			break
		}
	}
	if !valid {
		return 0, fmt.Errorf("tipo 必须为 receita 或 despesa，收到 %q: %w", tipo, ErrValidation)
	}

	transacao := models.Transacao{
		Descricao: descricao,
		Valor:     valor,
		Tipo:      tipo,
		Data:      data,
	}
	if err := db.Create(&transacao).Error; err != nil {
		return 0, translateError(err)
	}
	return transacao.ID, nil
}

// ListTransacoes 列出流水表全部记录，按 id 升序
func ListTransacoes(db *gorm.DB) ([]models.Transacao, error) {
	var transacoes []models.Transacao
	if err := db.Order("id ASC").Find(&transacoes).Error; err != nil {
		return nil, translateError(err)
	}
	return transacoes, nil
}
