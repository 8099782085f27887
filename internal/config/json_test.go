package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseJSON(t *testing.T) {
	path := writeConfigFile(t, `{
		"server": "https://books.example.com",
		"token": "file-token",
		"device_id": "file-device",
		"request_timeout": "1m",
		"state_dir": "~/.readersim",
		"max_pages": 120,
		"guard_window": 4
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://books.example.com", cfg.Server.URL)
	assert.Equal(t, "file-token", cfg.Server.AuthToken)
	assert.Equal(t, "file-device", cfg.Server.DeviceID)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "~/.readersim", cfg.Storage.StateDir)
	assert.Equal(t, 120, cfg.Sync.MaxPages)
	assert.Equal(t, 4, cfg.Sync.GuardWindow)
}

func TestParseJSON_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, err := parseJSON(writeConfigFile(t, `{"server": `))
		assert.Error(t, err)
	})
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{name: "string form", raw: `"30s"`, want: 30 * time.Second},
		{name: "composite string", raw: `"1h30m"`, want: 90 * time.Minute},
		{name: "nanosecond number", raw: `5000000000`, want: 5 * time.Second},
		{name: "bad string", raw: `"soon"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
