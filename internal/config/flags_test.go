package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	fs := flag.NewFlagSet("readersim-test", flag.ContinueOnError)
	cfg := parseFlags(fs, []string{
		"-server", "https://books.example.com",
		"-token", "tok-123",
		"-device-id", "dev-1",
		"-sync",
		"-full-sync",
		"-json",
		"-state-file", "/tmp/state.json",
		"-no-auto-state",
		"-max-pages", "50",
		"-request-timeout", "5s",
	})

	assert.Equal(t, "https://books.example.com", cfg.Server.URL)
	assert.Equal(t, "tok-123", cfg.Server.AuthToken)
	assert.Equal(t, "dev-1", cfg.Server.DeviceID)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 50, cfg.Sync.MaxPages)
	assert.Equal(t, "/tmp/state.json", cfg.Storage.StateFile)
	assert.True(t, cfg.Storage.NoAutoState)
	assert.True(t, cfg.Run.SyncOnce)
	assert.True(t, cfg.Run.FullSync)
	assert.True(t, cfg.Run.JSONOutput)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "short", args: []string{"-c", "/etc/readersim.json"}},
		{name: "long", args: []string{"-config", "/etc/readersim.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("readersim-test", flag.ContinueOnError)
			cfg := parseFlags(fs, tt.args)
			assert.Equal(t, "/etc/readersim.json", cfg.JSONFilePath)
		})
	}
}

func TestParseFlags_NoArgsIsAllZero(t *testing.T) {
	fs := flag.NewFlagSet("readersim-test", flag.ContinueOnError)
	cfg := parseFlags(fs, nil)

	// Zero values matter: the merger treats them as "unset" so lower
	// precedence sources can fill them in.
	assert.Equal(t, &StructuredConfig{}, cfg)
}
