package config

import "time"

// Built-in defaults, merged below every other source.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxPages       = 200
	DefaultGuardWindow    = 3
	DefaultStateDir       = "~/.readersim"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
		Sync: Sync{
			MaxPages:    DefaultMaxPages,
			GuardWindow: DefaultGuardWindow,
		},
		Storage: Storage{
			StateDir: DefaultStateDir,
		},
	}
}
