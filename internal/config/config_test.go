package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "finance.db", cfg.Database.Path)
	assert.Equal(t, 7*24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "web/templates", cfg.Web.TemplateDir)
	assert.Equal(t, "web/static", cfg.Web.StaticDir)
	assert.False(t, cfg.Web.SecureCookie)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  addr: \":9000\"\ndb:\n  path: /tmp/other.db\nsession:\n  ttl: 24h\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	// Untouched keys keep their defaults
	assert.Equal(t, "web/templates", cfg.Web.TemplateDir)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9000\"\n"), 0o600))

	t.Setenv("FINANCE_SERVER_ADDR", ":7777")
	t.Setenv("FINANCE_DB_PATH", "env.db")
	t.Setenv("FINANCE_WEB_SECURECOOKIE", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7777", cfg.Server.Addr)
	assert.Equal(t, "env.db", cfg.Database.Path)
	assert.True(t, cfg.Web.SecureCookie)
}
