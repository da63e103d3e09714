package database

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a connection to the local store database.
// The sqlite driver (default) is self-healing: an unreadable or corrupted
// database file is deleted and recreated empty rather than failing the
// application. That loses local data, so it is logged loudly and only
// happens as a last resort.
func Connect(cfg Config, log *zap.Logger) (*gorm.DB, error) {
	switch cfg.Driver {
	case DriverMySQL:
		return connectMySQL(cfg)
	default:
		return connectSQLite(cfg, log)
	}
}

func connectSQLite(cfg Config, log *zap.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), gormConfig)
	if err == nil {
		// Opening a corrupted sqlite file succeeds lazily; a trivial query
		// forces the file to actually be read.
		err = db.Exec("SELECT 1").Error
	}
	if err == nil {
		return db, nil
	}

	log.Error("Local store unreadable, deleting and recreating empty (all local data is lost)",
		zap.String("path", cfg.Path),
		zap.Error(err))

	if rmErr := os.Remove(cfg.Path); rmErr != nil && !os.IsNotExist(rmErr) {
		return nil, fmt.Errorf("failed to remove corrupted store %s: %w", cfg.Path, rmErr)
	}

	db, err = gorm.Open(sqlite.Open(cfg.Path), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to recreate store %s: %w", cfg.Path, err)
	}
	return db, nil
}

func connectMySQL(cfg Config) (*gorm.DB, error) {
	// Special characters in the password must be URL encoded for the DSN.
	userInfo := url.UserPassword(cfg.User, cfg.Password).String()

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	dsn := fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		userInfo, cfg.Host, cfg.Port, cfg.Name, timeout, timeout, timeout)

	// Suppress GORM logging for cleaner optional warnings in main logger
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
