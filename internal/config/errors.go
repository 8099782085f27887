package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates missing or invalid server settings:
	// the server URL and auth token are always required.
	ErrInvalidServerConfigs = errors.New("invalid server configuration: server URL and auth token are required")

	// ErrInvalidSyncConfigs indicates invalid sync limits (for example, a
	// negative max-pages value).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
