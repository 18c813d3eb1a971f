package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Address())
	assert.Equal(t, "theresa", cfg.AdminPassword)
	assert.Equal(t, 30*time.Second, cfg.Email.Timeout)
	assert.Equal(t, "Badass Bakery", cfg.Store.Name)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_URL", "user:pass@tcp(localhost:3306)/bakery?parseTime=true")
	t.Setenv("EMAIL_API_KEY", "re_test")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ADMIN_EMAIL", "owner@example.com")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "user:pass@tcp(localhost:3306)/bakery?parseTime=true", cfg.Database.URL)
	assert.Equal(t, "re_test", cfg.Email.APIKey)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Address())
	assert.Equal(t, "owner@example.com", cfg.AdminEmail)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORE_OWNER_NAME=Jo\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("STORE_OWNER_NAME") })

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Jo", cfg.Store.OwnerName)
}
