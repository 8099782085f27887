package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("READERSIM_SERVER", "https://books.example.com")
	t.Setenv("READERSIM_TOKEN", "env-token")
	t.Setenv("READERSIM_DEVICE_ID", "env-device")
	t.Setenv("READERSIM_REQUEST_TIMEOUT", "45s")
	t.Setenv("READERSIM_MAX_PAGES", "99")
	t.Setenv("READERSIM_GUARD_WINDOW", "5")
	t.Setenv("READERSIM_STATE_DIR", "/var/lib/readersim")
	t.Setenv("READERSIM_CONFIG", "/etc/readersim.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "https://books.example.com", cfg.Server.URL)
	assert.Equal(t, "env-token", cfg.Server.AuthToken)
	assert.Equal(t, "env-device", cfg.Server.DeviceID)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 99, cfg.Sync.MaxPages)
	assert.Equal(t, 5, cfg.Sync.GuardWindow)
	assert.Equal(t, "/var/lib/readersim", cfg.Storage.StateDir)
	assert.Equal(t, "/etc/readersim.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidValue(t *testing.T) {
	t.Setenv("READERSIM_MAX_PAGES", "lots")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}
