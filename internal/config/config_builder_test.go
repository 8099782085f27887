package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── merge precedence ─────────────────────────────────────────────────────────

func TestConfigBuilder_EarlierSourcesWin(t *testing.T) {
	flags := &StructuredConfig{
		Server: Server{URL: "https://flags.example.com", AuthToken: "flag-token"},
		Sync:   Sync{MaxPages: 10},
	}
	envs := &StructuredConfig{
		Server: Server{URL: "https://env.example.com", DeviceID: "env-device"},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, flags, envs, defaultConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	// Flags beat env for fields both set; env fills what flags left zero;
	// defaults fill the rest.
	assert.Equal(t, "https://flags.example.com", cfg.Server.URL)
	assert.Equal(t, "flag-token", cfg.Server.AuthToken)
	assert.Equal(t, "env-device", cfg.Server.DeviceID)
	assert.Equal(t, 10, cfg.Sync.MaxPages)
	assert.Equal(t, DefaultGuardWindow, cfg.Sync.GuardWindow)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultStateDir, cfg.Storage.StateDir)
}

func TestConfigBuilder_DefaultsAloneFailValidation(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, defaultConfig())

	// No server URL or token from any source.
	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestConfigBuilder_ValidationRejectsBadLimits(t *testing.T) {
	tests := []struct {
		name string
		sync Sync
	}{
		{name: "zero max pages", sync: Sync{MaxPages: 0, GuardWindow: 3}},
		{name: "negative guard window", sync: Sync{MaxPages: 200, GuardWindow: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StructuredConfig{
				Server: Server{URL: "https://books.example.com", AuthToken: "tok", RequestTimeout: 30 * time.Second},
				Sync:   tt.sync,
			}
			assert.ErrorIs(t, cfg.validate(), ErrInvalidSyncConfigs)
		})
	}
}

func TestConfigBuilder_JSONSourceFromFlags(t *testing.T) {
	path := writeConfigFile(t, `{
		"server": "https://file.example.com",
		"token": "file-token",
		"guard_window": 7
	}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()
	b.configs = append(b.configs, defaultConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "https://file.example.com", cfg.Server.URL)
	assert.Equal(t, "file-token", cfg.Server.AuthToken)
	assert.Equal(t, 7, cfg.Sync.GuardWindow)
	assert.Equal(t, DefaultMaxPages, cfg.Sync.MaxPages)
}

func TestConfigBuilder_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/readersim.json"})
	b.withJSON()

	_, err := b.build()
	assert.Error(t, err)
}
