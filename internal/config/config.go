// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for readersim.
// It is populated by merging command-line flags, environment variables, an
// optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the target server identity and transport settings.
	Server Server `envPrefix:"READERSIM_"`

	// Sync holds the sync-engine safety limits.
	Sync Sync `envPrefix:"READERSIM_"`

	// Storage holds state-snapshot settings.
	Storage Storage `envPrefix:"READERSIM_"`

	// Run holds one-shot run-mode switches. These are flag-only: they make
	// no sense as ambient environment state.
	Run Run

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged below the values already
	// loaded from flags and environment variables.
	// Populated via the READERSIM_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"READERSIM_CONFIG"`
}

// Server identifies the book-management server and the device credential.
type Server struct {
	// URL is the server base URL, e.g. "https://books.example.com".
	// Env: READERSIM_SERVER
	URL string `env:"SERVER"`

	// AuthToken is the opaque device credential from the user's profile.
	// Env: READERSIM_TOKEN
	AuthToken string `env:"TOKEN"`

	// DeviceID identifies the simulated device. A random UUID is generated
	// when empty.
	// Env: READERSIM_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`

	// RequestTimeout bounds every single page fetch (e.g. "30s").
	// Env: READERSIM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds the safety limits of the sync engine.
type Sync struct {
	// MaxPages is the ceiling on continuation pages per run; the safety
	// valve against unbounded or cyclic pagination.
	// Env: READERSIM_MAX_PAGES
	MaxPages int `env:"MAX_PAGES"`

	// GuardWindow is the loop-guard signature window size.
	// Env: READERSIM_GUARD_WINDOW
	GuardWindow int `env:"GUARD_WINDOW"`
}

// Storage holds snapshot persistence settings.
type Storage struct {
	// StateDir is the base directory for auto-generated snapshot files.
	// Env: READERSIM_STATE_DIR
	StateDir string `env:"STATE_DIR"`

	// StateFile overrides the deterministic per-profile snapshot path.
	// Env: READERSIM_STATE_FILE
	StateFile string `env:"STATE_FILE"`

	// NoAutoState disables auto-load on startup and auto-save after sync.
	// Flag-only (-no-auto-state).
	NoAutoState bool
}

// Run holds run-mode switches resolved from flags only.
type Run struct {
	// SyncOnce runs a single sync and exits instead of entering the shell.
	SyncOnce bool

	// FullSync forces the run (one-shot or first shell sync) to ignore the
	// stored token and resync from scratch.
	FullSync bool

	// JSONOutput emits the one-shot result as JSON for scripting.
	JSONOutput bool
}

// GetConfig loads, merges, and validates the application configuration from
// all sources. Returns a fully populated *StructuredConfig or an error if
// any source fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
