// @title English Station 后端 API
// @version 1.0
// @description English Station 英语学习平台的后端服务：课程、测验、学习进度与用户。

// @contact.name API支持
// @contact.email support@english-station.dev

// @host localhost:5000
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"english_station_backend/internal/app"
	"english_station_backend/internal/config"
	"english_station_backend/pkg/configwatcher"
	"english_station_backend/pkg/database"
	"english_station_backend/pkg/logger"
	"log"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	// 命令行参数
	configDir := pflag.String("config", "configs", "配置文件所在目录")
	port := pflag.String("port", "", "监听端口，覆盖配置与 PORT 环境变量")
	migrateOnly := pflag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	watchConfig := pflag.Bool("watch-config", false, "监听配置文件变化并热更新 CORS 与日志级别")
	pflag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}
	cfg.MigrateOnly = *migrateOnly

	// 迁移完成后直接退出
	if cfg.MigrateOnly {
		logger.InitLogger(cfg)
		defer logger.Log.Sync()

		db, err := database.InitDB(cfg)
		if err != nil {
			logger.Log.Fatal("Migration failed", zap.Error(err))
		}
		_ = database.Close(db)
		logger.Log.Info("数据库迁移完成，退出程序")
		return
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watchConfig {
		if cfg.ConfigFile == "" {
			logger.Log.Warn("No config file loaded, --watch-config ignored")
		} else {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if err := configwatcher.WatchConfig(ctx, cfg.ConfigFile, application.ApplyConfig); err != nil {
				logger.Log.Error("Failed to watch config", zap.Error(err))
			}
		}
	}

	application.Run()
}
