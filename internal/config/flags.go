package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-server server base URL
//	-token device auth token from the user profile
//	-device-id device identifier (random UUID if not set)
//	-c/-config json file path with configs
//	-sync run a single sync and exit (non-interactive)
//	-full-sync force a full resync, ignoring the stored token
//	-json output the one-shot result as JSON (for scripting)
//	-state-file state snapshot path (defaults to a per-profile file)
//	-state-dir base directory for auto-generated snapshots
//	-no-auto-state disable auto-load/auto-save of device state
//	-max-pages max continuation pages before aborting
//	-request-timeout per-page request timeout (e.g. "30s")
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var (
		serverURL      string
		authToken      string
		deviceID       string
		jsonConfigPath string
		syncOnce       bool
		fullSync       bool
		jsonOutput     bool
		stateFile      string
		stateDir       string
		noAutoState    bool
		maxPages       int
		requestTimeout time.Duration
	)

	fs.StringVar(&serverURL, "server", "", "Server base URL (e.g. https://books.example.com)")
	fs.StringVar(&authToken, "token", "", "Device auth token from the user profile")
	fs.StringVar(&deviceID, "device-id", "", "Device ID (random UUID if not set)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&syncOnce, "sync", false, "Immediately sync and exit (non-interactive)")
	fs.BoolVar(&fullSync, "full-sync", false, "Force full sync")
	fs.BoolVar(&jsonOutput, "json", false, "Output JSON (for scripting)")
	fs.StringVar(&stateFile, "state-file", "", "State snapshot path (defaults to per-profile file)")
	fs.StringVar(&stateDir, "state-dir", "", "Base directory for auto-generated state files")
	fs.BoolVar(&noAutoState, "no-auto-state", false, "Disable auto-load/auto-save of device state")
	fs.IntVar(&maxPages, "max-pages", 0, "Max sync continuation pages before aborting")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Per-page request timeout (e.g. 30s)")

	fs.Parse(args)

	return &StructuredConfig{
		Server: Server{
			URL:            serverURL,
			AuthToken:      authToken,
			DeviceID:       deviceID,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			MaxPages: maxPages,
		},
		Storage: Storage{
			StateDir:    stateDir,
			StateFile:   stateFile,
			NoAutoState: noAutoState,
		},
		Run: Run{
			SyncOnce:   syncOnce,
			FullSync:   fullSync,
			JSONOutput: jsonOutput,
		},
		JSONFilePath: jsonConfigPath,
	}
}
