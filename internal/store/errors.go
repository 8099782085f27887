package store

import "errors"

// Sentinel storage errors. Callers should use [errors.Is] to match them.
var (
	// ErrCorruptSnapshot is returned when an existing snapshot file cannot
	// be decoded. Unreadable data is never silently discarded; the caller
	// decides whether to delete and resync.
	ErrCorruptSnapshot = errors.New("snapshot file is corrupt")

	// ErrProfileMismatch is returned when a snapshot was written for a
	// different server/credential pair than the one in use, which usually
	// means the tool is pointed at the wrong server or token.
	ErrProfileMismatch = errors.New("snapshot belongs to a different server/credential profile")
)
