package db

import (
	"context"
	"harvesthub/config"
	"harvesthub/logger"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestDataSourceName(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "harvesthub",
		Password: "s3cret",
		Name:     "farms",
		SSLMode:  "require",
	}

	t.Run("with password", func(t *testing.T) {
		assert.Equal(t, "host=db.internal port=5433 user=harvesthub dbname=farms sslmode=require password=s3cret",
			dataSourceName(cfg, false))
	})

	t.Run("redacted", func(t *testing.T) {
		dsn := dataSourceName(cfg, true)

		assert.NotContains(t, dsn, "s3cret")
		assert.Contains(t, dsn, "dbname=farms")
	})

	t.Run("sslmode defaults to disable", func(t *testing.T) {
		cfg := cfg
		cfg.SSLMode = ""

		assert.Contains(t, dataSourceName(cfg, true), "sslmode=disable")
	})
}

func TestConnect_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	db, err := Connect(ctx, config.DatabaseConfig{Host: "127.0.0.1", Port: 1, User: "nobody", Name: "none", ConnMaxLifetime: time.Minute})

	require.Error(t, err)
	assert.Nil(t, db)
}
