package configs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gong-mcp/configs"
)

func TestLoadRequiresCredentials(t *testing.T) {
	t.Setenv("GONG_ACCESS_KEY", "")
	t.Setenv("GONG_ACCESS_KEY_SECRET", "")

	_, err := configs.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GONG_ACCESS_KEY")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GONG_ACCESS_KEY", "key")
	t.Setenv("GONG_ACCESS_KEY_SECRET", "secret")

	cfg, err := configs.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.gong.io/v2", cfg.BaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.ListenAddr)
}

func TestLoadFileOverlayAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gong.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: https://stub.example/v2\nlog_level: debug\n"), 0o644))

	t.Setenv("GONG_ACCESS_KEY", "key")
	t.Setenv("GONG_ACCESS_KEY_SECRET", "secret")
	t.Setenv("GONG_CONFIG_FILE", path)
	// Env beats file.
	t.Setenv("GONG_LOG_LEVEL", "warn")

	cfg, err := configs.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://stub.example/v2", cfg.BaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}
