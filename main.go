package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"financas/config"
	"financas/database"
	"financas/router"
	"financas/service"
)

var (
	configFile  string
	port        string
	runSeed     bool
	runView     bool
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&runSeed, "seed", false, "生成测试数据后退出")
	flag.BoolVar(&runView, "view", false, "打印数据表内容后退出")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("个人记账系统 v1.0.0")
		return
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
	}

	config.PrintConfig()

	// 初始化数据库（建表 + 枚举值，幂等）
	db, err := database.Init(cfg)
	if err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}

	if runSeed {
		if err := service.Seed(db, cfg.Seed); err != nil {
			log.Fatalf("生成测试数据失败: %v", err)
		}
		return
	}

	if runView {
		if err := service.Dump(db, os.Stdout); err != nil {
			log.Fatalf("打印数据表失败: %v", err)
		}
		return
	}

	// 设置路由
	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  💰 个人记账系统已启动")
	log.Printf("==========================================")
	log.Printf("  流水接口: http://localhost%s/transactions", cfg.Server.Port)
	log.Printf("  健康检查: http://localhost%s/health", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
