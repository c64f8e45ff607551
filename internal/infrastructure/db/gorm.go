package db

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"loan-tracker/internal/domain/loan"
	"loan-tracker/internal/domain/repayment"
	"loan-tracker/internal/domain/user"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// LogLevel maps an application log level onto gorm's. SQL statements are
// only traced at debug.
func LogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.Info
	case "error":
		return logger.Error
	case "silent", "off":
		return logger.Silent
	default:
		return logger.Warn
	}
}

func OpenGorm(dsn string, level logger.LogLevel) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn), level)
}

// OpenGormWithDialector opens, tunes the pool and pings. The level defaults
// to logger.Warn.
func OpenGormWithDialector(dial gorm.Dialector, level ...logger.LogLevel) (*gorm.DB, error) {
	lvl := logger.Warn
	if len(level) > 0 {
		lvl = level[0]
	}
	cfg := &gorm.Config{
		Logger: logger.New(
			slog.NewLogLogger(slog.Default().Handler(), slog.LevelInfo),
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  lvl,
				IgnoreRecordNotFoundError: true,
			},
		),
		DisableAutomaticPing: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	slog.Info("gorm: connected", "dialect", dial.Name())
	return db, nil
}

// Migrate brings the loan and repayment tables up to date. The users table
// belongs to the identity system and is only created when absent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&loan.Application{}, &repayment.Repayment{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return ensureTable(db, &user.User{})
}

func ensureTable(db *gorm.DB, model any) error {
	if db.Migrator().HasTable(model) {
		return nil
	}
	if err := db.Migrator().CreateTable(model); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	return nil
}
