// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive sentinel error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.URL == "" || cfg.Server.AuthToken == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Sync.MaxPages <= 0 || cfg.Sync.GuardWindow <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
