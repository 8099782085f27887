package adapter

import (
	"context"
	"encoding/json"

	"github.com/readersim/readersim/models"
)

// LibraryAdapter is the transport collaborator of the sync engine: a blocking
// client for the book-management server's device API.
//
// The engine only ever sees a page or an error. Continuation signaling is
// carried in the returned [models.SyncPage]; every call honors the context
// and the adapter's per-request timeout, so no fetch blocks indefinitely.
type LibraryAdapter interface {
	// FetchSyncPage requests one page of the library change feed. The token
	// is sent verbatim when non-empty; an empty token requests the
	// full-resync baseline.
	FetchSyncPage(ctx context.Context, token models.SyncToken) (models.SyncPage, error)

	// GetBookMetadata fetches the full server-side metadata document for a
	// single book.
	GetBookMetadata(ctx context.Context, bookID string) (json.RawMessage, error)

	// UpdateReadingState pushes the device's reading progress for a book
	// back to the server, the way a real device does after page turns.
	UpdateReadingState(ctx context.Context, bookID string, progress float64, status models.ReadingStatus) error
}
