// SPDX-License-Identifier: Apache-2.0

package models

import (
	"fmt"
	"strings"
	"time"
)

// DeviceState is the in-memory model of everything a device has synced: the
// book and collection maps, the last accepted continuation token, and the
// counters of the most recent run. It is the thing a sync run converges
// toward server truth.
//
// The state is mutated only by MergePage during a sync run and by the
// explicit Reset/full-sync paths. Token is special: the engine advances it
// only after an entire run has succeeded, so a failed run always resumes from
// the last known-good value.
type DeviceState struct {
	DeviceID    string                `json:"device_id"`
	Books       map[string]Book       `json:"books"`
	Collections map[string]Collection `json:"collections"`
	Token       SyncToken             `json:"sync_token,omitempty"`
	LastSync    time.Time             `json:"last_sync,omitzero"`
	LastStats   SyncStats             `json:"last_stats,omitzero"`
}

// NewDeviceState returns an empty state for the given device identity.
func NewDeviceState(deviceID string) *DeviceState {
	return &DeviceState{
		DeviceID:    deviceID,
		Books:       make(map[string]Book),
		Collections: make(map[string]Collection),
	}
}

// MergeResult reports what one page's merge did to the state.
//
// DanglingRefs lists collection members that reference a book id not present
// in the book map after the merge (e.g. an out-of-order delete). They are
// reported so the caller can log them; they are not an error.
type MergeResult struct {
	BooksAdded         int
	BooksUpdated       int
	BooksRemoved       int
	CollectionsAdded   int
	CollectionsUpdated int
	CollectionsRemoved int
	DanglingRefs       []string
}

// MergePage applies one parsed page delta.
//
// The operation is idempotent: upserts are keyed by id and fully replace the
// prior value, deletes remove by id, and collection membership is a
// normalized set, so replaying an identical delta (after a retried page)
// yields an identical state. Tombstones are consumed here: a deleted book
// leaves the map entirely and is never retained.
func (s *DeviceState) MergePage(delta PageDelta) MergeResult {
	var res MergeResult

	if s.Books == nil {
		s.Books = make(map[string]Book)
	}
	if s.Collections == nil {
		s.Collections = make(map[string]Collection)
	}

	for _, book := range delta.BookUpserts {
		if _, exists := s.Books[book.ID]; exists {
			res.BooksUpdated++
		} else {
			res.BooksAdded++
		}
		book.Deleted = false
		s.Books[book.ID] = book
	}

	for _, id := range delta.BookDeletes {
		if _, exists := s.Books[id]; exists {
			delete(s.Books, id)
			res.BooksRemoved++
		}
	}

	for _, col := range delta.CollectionUpserts {
		col.NormalizeMembers()
		if _, exists := s.Collections[col.ID]; exists {
			res.CollectionsUpdated++
		} else {
			res.CollectionsAdded++
		}
		s.Collections[col.ID] = col

		for _, bookID := range col.BookIDs {
			if _, ok := s.Books[bookID]; !ok {
				res.DanglingRefs = append(res.DanglingRefs, bookID)
			}
		}
	}

	for _, id := range delta.CollectionDeletes {
		if _, exists := s.Collections[id]; exists {
			delete(s.Collections, id)
			res.CollectionsRemoved++
		}
	}

	return res
}

// Reset clears all synced data and the continuation token, simulating a
// device reset / re-registration.
func (s *DeviceState) Reset() {
	s.Books = make(map[string]Book)
	s.Collections = make(map[string]Collection)
	s.Token = EmptySyncToken
	s.LastSync = time.Time{}
	s.LastStats = SyncStats{}
}

// BooksInCollection resolves a collection's membership against the book map,
// silently skipping dangling references.
func (s *DeviceState) BooksInCollection(collectionID string) []Book {
	col, ok := s.Collections[collectionID]
	if !ok {
		return nil
	}

	books := make([]Book, 0, len(col.BookIDs))
	for _, id := range col.BookIDs {
		if book, present := s.Books[id]; present {
			books = append(books, book)
		}
	}
	return books
}

// Summary renders the device status lines shown by the shell.
func (s *DeviceState) Summary() string {
	lastSync := "Never"
	if !s.LastSync.IsZero() {
		lastSync = s.LastSync.Format(time.RFC3339)
	}

	lines := []string{
		fmt.Sprintf("Device ID: %s", s.DeviceID),
		fmt.Sprintf("Books: %d", len(s.Books)),
		fmt.Sprintf("Collections: %d", len(s.Collections)),
		fmt.Sprintf("Last Sync: %s", lastSync),
	}
	return strings.Join(lines, "\n")
}
