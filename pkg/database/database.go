package database

import (
	"english_station_backend/internal/config"
	"english_station_backend/internal/model"
	applog "english_station_backend/pkg/logger"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models 参与自动迁移的全部表
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Lesson{},
		&model.Vocabulary{},
		&model.Quiz{},
		&model.Question{},
		&model.Answer{},
		&model.QuizResult{},
		&model.Progress{},
		&model.Setting{},
	}
}

// Dialector 根据配置选择数据库驱动
func Dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.PostgresDSN()), nil
	case config.DriverMySQL:
		return mysql.Open(cfg.MySQLDSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(&cfg.Database)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	applog.Log.Info("Database connection established", zap.String("driver", cfg.Database.Driver))

	if err := db.AutoMigrate(Models()...); err != nil {
		return nil, err
	}
	applog.Log.Info("Database migration completed")

	return db, nil
}

// Close 释放连接池
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
