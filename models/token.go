// SPDX-License-Identifier: Apache-2.0

package models

// SyncToken is the continuation token the server hands back after every sync
// page. The token is an opaque blob: the server is free to change its format
// at any time, so the client must never decode it or compare sub-fields.
// The only operations the protocol needs are presence, equality, and a
// lossless round trip through the x-kobo-synctoken header and the state
// snapshot.
//
// The zero value is the empty token, which requests a full-resync baseline.
type SyncToken string

// EmptySyncToken is the full-resync baseline token.
const EmptySyncToken SyncToken = ""

// ParseSyncToken wraps a raw header or snapshot value. No validation is
// performed; whatever the server sent is carried verbatim.
func ParseSyncToken(raw string) SyncToken {
	return SyncToken(raw)
}

// IsEmpty reports whether the token is the full-resync baseline.
func (t SyncToken) IsEmpty() bool {
	return t == ""
}

// Equal reports exact value equality with another token.
func (t SyncToken) Equal(other SyncToken) bool {
	return t == other
}

// String returns the raw token value, suitable for the x-kobo-synctoken
// header. Round-tripping through ParseSyncToken is lossless.
func (t SyncToken) String() string {
	return string(t)
}

// Abbrev returns a shortened token prefix for log and error messages, so
// diagnostics stay readable without dumping the whole blob.
func (t SyncToken) Abbrev() string {
	const max = 16
	if len(t) <= max {
		return string(t)
	}
	return string(t[:max]) + "..."
}
