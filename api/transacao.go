package api

import (
	"time"

	"financas/database"
	"financas/models"

	"github.com/gin-gonic/gin"
)

// TransacaoHandler 流水记录处理器
type TransacaoHandler struct{}

// NewTransacaoHandler 创建流水记录处理器
func NewTransacaoHandler() *TransacaoHandler {
	return &TransacaoHandler{}
}

// CreateTransacaoRequest 创建流水请求
// valor 用指针区分缺失和 0。
type CreateTransacaoRequest struct {
	Descricao string   `json:"descricao" binding:"required"`
	Valor     *float64 `json:"valor" binding:"required"`
	Tipo      string   `json:"tipo" binding:"required"`
}

// Create 创建流水记录
// 日期由服务端填当天，调用方不能回填历史日期。tipo 不在封闭集合内、
// 必填字段缺失或底层写入失败都返回 400。
func (h *TransacaoHandler) Create(c *gin.Context) {
	var req CreateTransacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	data := time.Now().Format(models.DateLayout)
	id, err := database.CreateTransacao(database.DB, req.Descricao, *req.Valor, req.Tipo, data)
	if err != nil {
		BadRequest(c, SafeErrorMessage(err, "创建流水失败"))
		return
	}

	Created(c, "创建成功", models.Transacao{
		ID:        id,
		Descricao: req.Descricao,
		Valor:     *req.Valor,
		Tipo:      req.Tipo,
		Data:      data,
	})
}

// List 列出全部流水记录
// 不分页不过滤，整表按 id 升序返回。
func (h *TransacaoHandler) List(c *gin.Context) {
	transacoes, err := database.ListTransacoes(database.DB)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if transacoes == nil {
		transacoes = []models.Transacao{}
	}
	c.JSON(200, transacoes)
}
