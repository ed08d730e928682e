package database_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/config"
	"github.com/marcos-nsantos/image-scaler/internal/infrastructure/database"
)

func dbConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:            "db.internal",
		Port:            5433,
		User:            "scaler",
		Password:        "secret",
		Name:            "scaler",
		SSLMode:         "disable",
		MaxOpenConns:    8,
		MaxIdleConns:    2,
		ConnMaxLifetime: 10 * time.Minute,
	}
}

func TestPoolConfig(t *testing.T) {
	t.Run("applies pool settings", func(t *testing.T) {
		cfg, err := database.PoolConfig(dbConfig())

		require.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.ConnConfig.Host)
		assert.Equal(t, uint16(5433), cfg.ConnConfig.Port)
		assert.Equal(t, int32(8), cfg.MaxConns)
		assert.Equal(t, int32(2), cfg.MinConns)
		assert.Equal(t, 10*time.Minute, cfg.MaxConnLifetime)
		assert.Equal(t, "image-scaler", cfg.ConnConfig.RuntimeParams["application_name"])
	})

	t.Run("caps idle connections at the pool size", func(t *testing.T) {
		c := dbConfig()
		c.MaxOpenConns = 3
		c.MaxIdleConns = 10

		cfg, err := database.PoolConfig(c)

		require.NoError(t, err)
		assert.Equal(t, int32(3), cfg.MaxConns)
		assert.Equal(t, int32(3), cfg.MinConns)
	})

	t.Run("keeps at least one connection", func(t *testing.T) {
		c := dbConfig()
		c.MaxOpenConns = 0
		c.MaxIdleConns = 0

		cfg, err := database.PoolConfig(c)

		require.NoError(t, err)
		assert.Equal(t, int32(1), cfg.MaxConns)
		assert.Equal(t, int32(0), cfg.MinConns)
	})

	t.Run("rejects an unparsable dsn", func(t *testing.T) {
		c := dbConfig()
		c.Port = -1
		c.SSLMode = "bogus"

		_, err := database.PoolConfig(c)

		assert.ErrorContains(t, err, "parsing database config")
	})
}
