package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Storefront-cart/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, config.CatalogDriverHTTP, cfg.Catalog.Driver)
	assert.Equal(t, "http://localhost:3333", cfg.Catalog.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, config.StorageDriverFile, cfg.Storage.Driver)
	assert.Equal(t, "@RocketShoes:cart", cfg.Storage.Key)
	assert.Equal(t, "pt-BR", cfg.Price.Locale)
	assert.Equal(t, "BRL", cfg.Price.Currency)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.UsesPostgres())
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_DRIVER", "POSTGRES")
	t.Setenv("CATALOG_BASE_URL", "http://catalog:3333/")
	t.Setenv("CATALOG_TIMEOUT_SECONDS", "2")
	t.Setenv("CART_STORAGE_DRIVER", "memory")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.CatalogDriverPostgres, cfg.Catalog.Driver)
	assert.Equal(t, "http://catalog:3333", cfg.Catalog.BaseURL, "la barra final se elimina")
	assert.Equal(t, 2*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, config.StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.UsesPostgres())
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CART_STORAGE_DRIVER", "redis")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "storefront", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/storefront?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
