// SPDX-License-Identifier: Apache-2.0

package models

import "encoding/json"

// SyncPage is one response of the paginated library sync endpoint as the
// transport hands it to the engine.
//
// Continue and NextToken come from the x-kobo-sync / x-kobo-synctoken
// response headers and must be honored bit-for-bit: Continue true means the
// server has more pages and NextToken must accompany it; any other signal
// ends the run regardless of whether a token is present. Items is the raw
// JSON change feed; the engine parses it so that malformed content surfaces
// as a parse failure rather than a transport one.
type SyncPage struct {
	Continue  bool
	NextToken SyncToken
	Items     []json.RawMessage
}

// SyncItem is one entry of the change feed. Exactly one field is expected to
// be set; entries with none are unknown item shapes and are skipped for
// forward compatibility.
type SyncItem struct {
	NewEntitlement     *EntitlementItem `json:"NewEntitlement,omitempty"`
	ChangedEntitlement *EntitlementItem `json:"ChangedEntitlement,omitempty"`
	DeletedEntitlement *EntitlementItem `json:"DeletedEntitlement,omitempty"`
	NewTag             *TagItem         `json:"NewTag,omitempty"`
	ChangedTag         *TagItem         `json:"ChangedTag,omitempty"`
	DeletedTag         *TagItem         `json:"DeletedTag,omitempty"`
}

// EntitlementItem carries a book change: the entitlement identifies the book,
// the metadata describes it. Deletes carry only the entitlement.
type EntitlementItem struct {
	BookEntitlement BookEntitlement `json:"BookEntitlement"`
	BookMetadata    BookMetadata    `json:"BookMetadata"`
}

// BookEntitlement identifies one book on the wire.
type BookEntitlement struct {
	ID           string `json:"Id"`
	LastModified string `json:"LastModified,omitempty"`
}

// BookMetadata is the wire representation of a book's descriptive fields.
type BookMetadata struct {
	Title            string            `json:"Title"`
	ContributorRoles []ContributorRole `json:"ContributorRoles,omitempty"`
	Series           *SeriesInfo       `json:"Series,omitempty"`
	Publisher        *PublisherInfo    `json:"Publisher,omitempty"`
	Description      string            `json:"Description,omitempty"`
	Language         string            `json:"Language,omitempty"`
	CoverImageURL    string            `json:"CoverImageUrl,omitempty"`
	DownloadURLs     []DownloadURL     `json:"DownloadUrls,omitempty"`
	FileSize         int64             `json:"FileSize,omitempty"`
}

// ContributorRole names one contributor; only Role "Author" feeds the
// device's author list.
type ContributorRole struct {
	Name string `json:"Name"`
	Role string `json:"Role"`
}

// SeriesInfo is the wire series block.
type SeriesInfo struct {
	Name   string  `json:"Name"`
	Number float64 `json:"Number"`
}

// PublisherInfo is the wire publisher block.
type PublisherInfo struct {
	Name string `json:"Name"`
}

// DownloadURL is one downloadable format of a book.
type DownloadURL struct {
	Format string `json:"Format"`
	URL    string `json:"Url"`
}

// TagItem carries a collection change.
type TagItem struct {
	Tag Tag `json:"Tag"`
}

// Tag is the wire representation of a collection.
type Tag struct {
	ID    string      `json:"Id"`
	Name  string      `json:"Name"`
	Items []TagMember `json:"Items,omitempty"`
}

// TagMember references one book inside a collection.
type TagMember struct {
	RevisionID string `json:"RevisionId"`
}

// PageDelta is a fully parsed page, ready to merge. Parsing a page either
// yields a complete delta or fails; a delta is never applied partially.
type PageDelta struct {
	BookUpserts       []Book
	BookDeletes       []string
	CollectionUpserts []Collection
	CollectionDeletes []string
}

// Empty reports whether the delta carries no changes.
func (d PageDelta) Empty() bool {
	return len(d.BookUpserts) == 0 && len(d.BookDeletes) == 0 &&
		len(d.CollectionUpserts) == 0 && len(d.CollectionDeletes) == 0
}
