package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"financas/config"
	"financas/database"
	"financas/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestAPI 建一个真实 sqlite 库并注册流水路由
func setupTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test.db")},
	}
	config.GlobalConfig = cfg
	t.Cleanup(func() { config.GlobalConfig = nil })

	_, err := database.Init(cfg)
	require.NoError(t, err)

	router := gin.New()
	handler := NewTransacaoHandler()
	router.POST("/transactions", handler.Create)
	router.GET("/transactions", handler.List)
	return router
}

func postJSON(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTransacaoCreateAndList(t *testing.T) {
	router := setupTestAPI(t)

	w := postJSON(router, `{"descricao":"Lunch","valor":23.50,"tipo":"despesa"}`)
	assert.Equal(t, 201, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created["message"])

	// 列表里能看到刚写入的记录，日期为服务端当天
	req := httptest.NewRequest("GET", "/transactions", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)

	var transacoes []models.Transacao
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &transacoes))
	require.Len(t, transacoes, 1)
	assert.Equal(t, "Lunch", transacoes[0].Descricao)
	assert.Equal(t, 23.5, transacoes[0].Valor)
	assert.Equal(t, "despesa", transacoes[0].Tipo)
	assert.Equal(t, time.Now().Format(models.DateLayout), transacoes[0].Data)
}

func TestTransacaoCreateMissingFields(t *testing.T) {
	router := setupTestAPI(t)

	w := postJSON(router, `{}`)
	assert.Equal(t, 400, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])

	// 不应写入任何行
	transacoes, err := database.ListTransacoes(database.DB)
	require.NoError(t, err)
	assert.Empty(t, transacoes)
}

func TestTransacaoCreateInvalidTipo(t *testing.T) {
	router := setupTestAPI(t)

	w := postJSON(router, `{"descricao":"Lunch","valor":10,"tipo":"outro"}`)
	assert.Equal(t, 400, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestTransacaoListEmpty(t *testing.T) {
	router := setupTestAPI(t)

	req := httptest.NewRequest("GET", "/transactions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	// 空库返回空数组而不是 null
	assert.JSONEq(t, "[]", w.Body.String())
}
