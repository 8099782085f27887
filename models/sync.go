// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// SyncMode selects the starting token for a sync run.
type SyncMode string

const (
	// SyncIncremental resumes from the token stored in the device state.
	SyncIncremental SyncMode = "incremental"
	// SyncFull ignores the stored token and resynchronizes from scratch.
	SyncFull SyncMode = "full"
)

// SyncStats is a plain snapshot of the counters accumulated during one sync
// run. On failure the engine still returns the stats gathered up to the
// failing page, so they can be surfaced for diagnostics.
type SyncStats struct {
	BooksAdded         int `json:"books_added"`
	BooksUpdated       int `json:"books_updated"`
	BooksRemoved       int `json:"books_removed"`
	CollectionsAdded   int `json:"collections_added"`
	CollectionsUpdated int `json:"collections_updated"`
	CollectionsRemoved int `json:"collections_removed"`
	Pages              int `json:"pages"`

	Elapsed time.Duration `json:"elapsed_ns"`
}

// Add accumulates a single page's merge result into the run totals.
func (s *SyncStats) Add(r MergeResult) {
	s.BooksAdded += r.BooksAdded
	s.BooksUpdated += r.BooksUpdated
	s.BooksRemoved += r.BooksRemoved
	s.CollectionsAdded += r.CollectionsAdded
	s.CollectionsUpdated += r.CollectionsUpdated
	s.CollectionsRemoved += r.CollectionsRemoved
}
