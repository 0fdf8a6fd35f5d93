package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"sportline_backend/internal/config"
	"sportline_backend/internal/logger"
	"sportline_backend/internal/models"
)

// ConnectGorm открывает соединение с БД по настройкам конфига.
// TranslateError обязателен: сервисный слой опирается на
// gorm.ErrDuplicatedKey при нарушении уникальных индексов.
func ConnectGorm(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	case "postgres", "":
		dialector = postgres.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	logger.Info("Database connection established", "driver", cfg.Database.Driver)
	return db, nil
}

// Migrate приводит схему к актуальному состоянию
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Sport{},
		&models.User{},
		&models.Commentary{},
	); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	logger.Info("Database migration completed")
	return nil
}
