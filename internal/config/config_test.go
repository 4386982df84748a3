package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 30*time.Second, cfg.Dashboard.CacheTTL)
	assert.False(t, cfg.Server.IsProduction())
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: "9090"
database:
  driver: sqlite
  dsn: "file:local.db"
seed:
  on_startup: true
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("DATABASE_URL", "postgres://ops@localhost/ops")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("BIZOPS_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "postgres://ops@localhost/ops", cfg.Database.DSN)
	assert.True(t, cfg.Server.IsProduction())
	assert.True(t, cfg.Seed.OnStartup)
	assert.Equal(t, "debug", cfg.Log.Level)
}
