package models

// Tipo 取值（封闭集合）
const (
	TipoReceita = "receita"
	TipoDespesa = "despesa"
)

// Transacao 对外 HTTP 接口使用的扁平流水表
// 沿用旧接口的葡萄牙语字段契约：descricao/valor/tipo/data。
// valor 保留浮点存储，接口要求返回裸 JSON 数字。
type Transacao struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Descricao string  `json:"descricao" gorm:"size:255;not null"`
	Valor     float64 `json:"valor" gorm:"not null"`
	Tipo      string  `json:"tipo" gorm:"size:20;not null"`
	Data      string  `json:"data" gorm:"size:10;not null"`
}

// TableName 设置表名
func (Transacao) TableName() string {
	return "transacoes"
}

// GetTipos 获取流水类型的全部合法取值
func GetTipos() []string {
	return []string{TipoReceita, TipoDespesa}
}
