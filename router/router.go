package router

import (
	"time"

	"financas/api"
	"financas/config"
	"financas/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// 流水记录接口（无认证，内部工具）
	transacaoHandler := api.NewTransacaoHandler()
	r.POST("/transactions", middleware.WriteRateLimit(60, time.Minute), transacaoHandler.Create)
	r.GET("/transactions", transacaoHandler.List)

	// 导出相关
	exportHandler := api.NewExportHandler()
	export := r.Group("/transactions/export")
	{
		export.GET("/csv", exportHandler.ExportCSV)
		export.GET("/excel", exportHandler.ExportExcel)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
