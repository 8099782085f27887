package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/readersim/readersim/internal/adapter"
	"github.com/readersim/readersim/internal/config"
	"github.com/readersim/readersim/internal/logger"
	"github.com/readersim/readersim/internal/service"
	"github.com/readersim/readersim/internal/shell"
	"github.com/readersim/readersim/internal/store"
	"github.com/readersim/readersim/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("readersim", os.Stderr)

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: server URL and auth token required.")
		fmt.Fprintln(os.Stderr, "Provide via -server/-token, a -config file, or READERSIM_SERVER/READERSIM_TOKEN env vars.")
		log.Fatal().Err(err).Msg("error getting configs")
	}

	snapStore := store.NewSnapshotStore(cfg.Server.URL, cfg.Server.AuthToken, log)

	statePath := ""
	if !cfg.Storage.NoAutoState {
		statePath = cfg.Storage.StateFile
		if statePath == "" {
			statePath = snapStore.DefaultPath(cfg.Storage.StateDir)
		}
	}

	state := models.NewDeviceState("")
	if statePath != "" {
		state, err = snapStore.Load(statePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", statePath).Msg("error loading device state")
		}
	}
	if state.DeviceID == "" {
		state.DeviceID = deviceID(cfg.Server.DeviceID)
	}

	libAdapter := adapter.NewHTTPLibraryAdapter(adapter.HTTPClientConfig{
		BaseURL:   cfg.Server.URL,
		AuthToken: cfg.Server.AuthToken,
		DeviceID:  state.DeviceID,
		Timeout:   cfg.Server.RequestTimeout,
	}, log)

	engine := service.NewSyncEngine(state, libAdapter, service.EngineConfig{
		MaxPages:    cfg.Sync.MaxPages,
		GuardWindow: cfg.Sync.GuardWindow,
	}, log)

	ctx := context.Background()

	if cfg.Run.SyncOnce {
		os.Exit(runOnce(ctx, cfg, state, engine, snapStore, statePath, log))
	}

	printBuildInfo()
	sh := shell.New(state, engine, snapStore, libAdapter, statePath, os.Stdin, os.Stdout, log)
	if err = sh.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("shell error")
	}
}

// runOnce performs a single non-interactive sync (the -sync flag) and
// reports the result as text or JSON.
func runOnce(ctx context.Context, cfg *config.StructuredConfig, state *models.DeviceState,
	engine service.SyncEngine, snapStore *store.SnapshotStore, statePath string, log *logger.Logger,
) int {
	mode := models.SyncIncremental
	if cfg.Run.FullSync {
		mode = models.SyncFull
	}

	stats, err := engine.Sync(ctx, mode)
	if err == nil && statePath != "" {
		err = snapStore.Save(state, statePath)
	}

	if cfg.Run.JSONOutput {
		out := syncOutput{
			Success:     err == nil,
			Stats:       stats,
			Books:       len(state.Books),
			Collections: len(state.Collections),
			StateFile:   statePath,
		}
		if err != nil {
			out.Error = err.Error()
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(out)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Sync failed: %v\n", err)
	} else {
		fmt.Printf("✓ Sync complete: %d books, %d collections (%d pages)\n",
			len(state.Books), len(state.Collections), stats.Pages)
	}

	if err != nil {
		log.Error().Err(err).Msg("sync failed")
		return 1
	}
	return 0
}

// syncOutput is the -json document emitted by one-shot runs.
type syncOutput struct {
	Success     bool             `json:"success"`
	Error       string           `json:"error,omitempty"`
	Stats       models.SyncStats `json:"stats"`
	Books       int              `json:"books"`
	Collections int              `json:"collections"`
	StateFile   string           `json:"state_file,omitempty"`
}

func deviceID(configured string) string {
	if configured != "" {
		return configured
	}
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
