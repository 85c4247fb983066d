package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.ServerURL)
	assert.Equal(t, "default", cfg.SessionID)
	assert.False(t, cfg.Debug)
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gymbuddy.yaml")
	body := "server_url: http://coach.local:9000\nsession_id: alice\ndebug: true\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://coach.local:9000", cfg.ServerURL)
	assert.Equal(t, "alice", cfg.SessionID)
	assert.True(t, cfg.Debug)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gymbuddy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gymbuddy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: http://file.local\n"), 0o644))

	t.Setenv("GYMBUDDY_SERVER_URL", "http://env.local")
	t.Setenv("GYMBUDDY_SESSION_ID", "bob")
	t.Setenv("GYMBUDDY_DEBUG", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env.local", cfg.ServerURL)
	assert.Equal(t, "bob", cfg.SessionID)
	assert.True(t, cfg.Debug)
}
