package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jihanurrahman33/BREMS/internal/config"
	"github.com/jihanurrahman33/BREMS/internal/database"
	"github.com/jihanurrahman33/BREMS/internal/ledger"
	"github.com/jihanurrahman33/BREMS/internal/logger"
	"github.com/jihanurrahman33/BREMS/internal/router"
	"github.com/jihanurrahman33/BREMS/internal/task"
	"github.com/jihanurrahman33/BREMS/internal/token"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	if cfg.Log.Output == "file" {
		l, err := logger.NewWithFileRotation(logger.ParseLogLevel(cfg.Log.Level), cfg.Log.File)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		logger.SetDefaultLogger(l)
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 初始化代币发行方和账本，并给账本授予增发权限
	issuer := token.NewIssuer(db)
	ledgerService, err := ledger.New(db, issuer, cfg.Platform)
	if err != nil {
		log.Fatalf("Failed to initialize ledger: %v", err)
	}
	issuer.AuthorizeMinter(ledger.MinterID)
	defer ledgerService.Close()

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(ledgerService, issuer)

	// 启动定时任务
	manager := task.Start(ledgerService, cfg)
	defer manager.Stop()

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
