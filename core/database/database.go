package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrDisabled is returned by Connect when no driver is configured.
var ErrDisabled = errors.New("database is not configured")

// Connect opens and pings the configured database.
// Callers treat the database as optional and degrade when it fails.
func Connect(cfg Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		// Every sqlite connection to :memory: is a separate database.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Dialector returns the gorm dialector for the configured driver.
func Dialector(cfg Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverMySQL:
		return mysql.Open(DSN(cfg)), nil
	case DriverSQLite:
		return sqlite.Open(cfg.Name), nil
	case "":
		return nil, ErrDisabled
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// DSN builds a MySQL DSN. The password is URL encoded and the timeout
// applies to connection setup, reads and writes.
func DSN(cfg Config) string {
	userInfo := url.UserPassword(cfg.User, cfg.Password).String()
	timeout := int(cfg.Timeout().Seconds())
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		userInfo, cfg.Host, cfg.Port, cfg.Name, timeout, timeout, timeout)
}
