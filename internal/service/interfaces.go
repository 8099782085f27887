package service

import (
	"context"

	"github.com/readersim/readersim/models"
)

// SyncEngine drives the paginated library-sync protocol against the server
// and converges the device state toward server truth.
type SyncEngine interface {
	// Sync runs one sync session in the given mode. It returns the counters
	// accumulated during the run; on failure the stats gathered up to the
	// failing page are returned alongside the error for diagnostics.
	//
	// The device state's continuation token advances only when the whole run
	// succeeds. Any failure — transport, protocol, or parse — leaves it at
	// its last known-good value, so the next run resumes safely.
	Sync(ctx context.Context, mode models.SyncMode) (models.SyncStats, error)
}
