// file: db/db.go

package db

import (
	"context"
	"database/sql"
	"fmt"
	"harvesthub/config"
	"harvesthub/logger"

	_ "github.com/lib/pq"
)

// dataSourceName builds a lib/pq connection string. The password is omitted when redact is set
// so the result can be logged.
func dataSourceName(cfg config.DatabaseConfig, redact bool) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s", cfg.Host, cfg.Port, cfg.User, cfg.Name, sslMode)
	if !redact && cfg.Password != "" {
		dsn += " password=" + cfg.Password
	}
	return dsn
}

// Connect opens the farmers database and verifies it answers before ctx expires.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	logger.Log.WithField("connection", dataSourceName(cfg, true)).Info("Attempting to connect to the database")

	db, err := sql.Open("postgres", dataSourceName(cfg, false))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to open database connection")
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err = db.PingContext(ctx); err != nil {
		logger.Log.WithError(err).Error("Failed to ping database")
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Log.Info("Database connection established successfully")
	return db, nil
}
