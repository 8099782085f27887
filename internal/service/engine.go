package service

import (
	"context"
	"fmt"
	"time"

	"github.com/readersim/readersim/internal/adapter"
	"github.com/readersim/readersim/internal/logger"
	"github.com/readersim/readersim/models"
)

// defaultMaxPages bounds a sync run when no explicit ceiling is configured.
// It exists purely as a safety valve against unbounded or cyclic
// continuation.
const defaultMaxPages = 200

// EngineConfig tunes a sync engine.
type EngineConfig struct {
	// MaxPages is the hard ceiling on pages fetched per run.
	MaxPages int
	// GuardWindow is the loop-guard signature window size.
	GuardWindow int
}

type syncEngine struct {
	state   *models.DeviceState
	library adapter.LibraryAdapter
	guard   *loopGuard
	cfg     EngineConfig
	log     *logger.Logger
}

// NewSyncEngine builds a [SyncEngine] operating on the given device state
// through the given transport. The caller is responsible for serializing runs
// against one state; the engine itself holds no locks.
func NewSyncEngine(state *models.DeviceState, library adapter.LibraryAdapter, cfg EngineConfig, log *logger.Logger) SyncEngine {
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = defaultMaxPages
	}

	return &syncEngine{
		state:   state,
		library: library,
		guard:   newLoopGuard(cfg.GuardWindow),
		cfg:     cfg,
		log:     log,
	}
}

// Sync implements [SyncEngine]. Pagination is inherently serial: each fetch
// depends on the token the previous page returned, so pages are requested one
// at a time until the server signals completion, a limit is hit, or an
// anomaly is detected.
func (e *syncEngine) Sync(ctx context.Context, mode models.SyncMode) (stats models.SyncStats, err error) {
	start := time.Now()
	defer func() {
		stats.Elapsed = time.Since(start)
	}()

	e.guard.Reset()

	// The working token is local to the run; the state's token is only
	// replaced after the whole run has succeeded.
	working := e.state.Token
	if mode == models.SyncFull {
		working = models.EmptySyncToken
		e.state.Books = make(map[string]models.Book)
		e.state.Collections = make(map[string]models.Collection)
		e.state.Token = models.EmptySyncToken
	}

	e.log.Info().
		Str("mode", string(mode)).
		Str("token", working.Abbrev()).
		Int("max_pages", e.cfg.MaxPages).
		Msg("sync started")

	for page := 1; page <= e.cfg.MaxPages; page++ {
		resp, fetchErr := e.library.FetchSyncPage(ctx, working)
		if fetchErr != nil {
			return stats, fmt.Errorf("fetch sync page %d: %w", page, fetchErr)
		}
		stats.Pages++

		if resp.Continue && resp.NextToken.IsEmpty() {
			return stats, &ProtocolError{Anomaly: ErrMissingToken, Page: page, SentToken: working}
		}

		sig := pageSignature(working, signatureIDs(resp.Items))
		if e.guard.Observe(sig) {
			return stats, &ProtocolError{
				Anomaly:   ErrRepeatedPage,
				Page:      page,
				SentToken: working,
				NextToken: resp.NextToken,
			}
		}

		delta, parseErr := parsePage(page, resp.Items)
		if parseErr != nil {
			return stats, parseErr
		}

		res := e.state.MergePage(delta)
		stats.Add(res)
		if len(res.DanglingRefs) > 0 {
			e.log.Warn().
				Int("page", page).
				Strs("book_ids", res.DanglingRefs).
				Msg("collection members reference books missing from device state")
		}
		e.log.Debug().
			Int("page", page).
			Int("items", len(resp.Items)).
			Int("books_added", res.BooksAdded).
			Int("books_removed", res.BooksRemoved).
			Msg("page merged")

		if !resp.Continue {
			if !resp.NextToken.IsEmpty() {
				working = resp.NextToken
			}
			e.state.Token = working
			e.state.LastSync = time.Now()
			stats.Elapsed = time.Since(start)
			e.state.LastStats = stats

			e.log.Info().
				Int("pages", stats.Pages).
				Int("books", len(e.state.Books)).
				Int("collections", len(e.state.Collections)).
				Str("token", working.Abbrev()).
				Msg("sync complete")
			return stats, nil
		}

		working = resp.NextToken
	}

	return stats, &ProtocolError{
		Anomaly:   ErrPageLimitExceeded,
		Page:      e.cfg.MaxPages,
		SentToken: working,
	}
}
