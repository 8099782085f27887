// SPDX-License-Identifier: Apache-2.0

// Package store persists the device state as a durable JSON snapshot.
//
// A snapshot is always a complete, self-consistent document: saves serialize
// to a temporary file in the destination directory and rename it over the
// target, so a crash or concurrent reader never observes a half-written
// file.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/readersim/readersim/internal/logger"
	"github.com/readersim/readersim/models"
)

// snapshotVersion is bumped when the snapshot schema changes incompatibly.
const snapshotVersion = 1

// snapshot is the on-disk document. It round-trips exactly through
// Save/Load: the book map, the collection map, the sync token, and the
// last-sync timestamp all survive unchanged.
type snapshot struct {
	Version     int                 `json:"version"`
	SavedAt     time.Time           `json:"saved_at"`
	ProfileID   string              `json:"profile_id,omitempty"`
	ServerURL   string              `json:"server_url,omitempty"`
	DeviceID    string              `json:"device_id"`
	SyncToken   string              `json:"sync_token,omitempty"`
	DeviceState *models.DeviceState `json:"device_state"`
}

// SnapshotStore loads and saves device-state snapshots for one
// server/credential profile.
type SnapshotStore struct {
	profileID string
	serverURL string
	log       *logger.Logger
}

// NewSnapshotStore builds a store bound to the given server/credential pair.
// The pair's fingerprint is embedded in every saved snapshot and checked on
// load.
func NewSnapshotStore(serverURL, authToken string, log *logger.Logger) *SnapshotStore {
	return &SnapshotStore{
		profileID: ProfileID(serverURL, authToken),
		serverURL: strings.TrimRight(serverURL, "/"),
		log:       log,
	}
}

// ProfileID fingerprints a server/credential pair. Repeated runs against the
// same pair deterministically reuse the same snapshot path.
func ProfileID(serverURL, authToken string) string {
	raw := strings.TrimRight(serverURL, "/") + "|" + authToken
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])[:12]
}

// DefaultPath returns the snapshot path for this store's profile under
// stateDir. A leading "~" in stateDir expands to the user's home directory.
func (s *SnapshotStore) DefaultPath(stateDir string) string {
	return filepath.Join(expandHome(stateDir), "state_"+s.profileID+".json")
}

// Load reads a snapshot from path and reconstructs the device state.
//
// A missing file is not an error: a fresh empty state is returned so a first
// run starts from the full-resync baseline. An existing file that cannot be
// read or decoded fails with a storage error; a snapshot written for another
// profile fails with [ErrProfileMismatch].
func (s *SnapshotStore) Load(path string) (*models.DeviceState, error) {
	path = expandHome(path)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug().Str("path", path).Msg("no snapshot found, starting fresh")
		return models.NewDeviceState(""), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	var snap snapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w (%w)", path, err, ErrCorruptSnapshot)
	}
	if snap.DeviceState == nil {
		return nil, fmt.Errorf("snapshot %s has no device state: %w", path, ErrCorruptSnapshot)
	}
	if snap.ProfileID != "" && snap.ProfileID != s.profileID {
		return nil, fmt.Errorf("snapshot %s (profile %s, want %s): %w",
			path, snap.ProfileID, s.profileID, ErrProfileMismatch)
	}

	state := snap.DeviceState
	if state.Books == nil {
		state.Books = make(map[string]models.Book)
	}
	if state.Collections == nil {
		state.Collections = make(map[string]models.Collection)
	}
	if state.DeviceID == "" {
		state.DeviceID = snap.DeviceID
	}
	state.Token = models.ParseSyncToken(snap.SyncToken)

	s.log.Info().
		Str("path", path).
		Int("books", len(state.Books)).
		Int("collections", len(state.Collections)).
		Msg("snapshot loaded")
	return state, nil
}

// Save writes the state to path atomically: the document is serialized to a
// temporary file in the same directory, synced, and renamed over the
// destination. Parent directories are created as needed.
func (s *SnapshotStore) Save(state *models.DeviceState, path string) error {
	path = expandHome(path)

	snap := snapshot{
		Version:     snapshotVersion,
		SavedAt:     time.Now(),
		ProfileID:   s.profileID,
		ServerURL:   s.serverURL,
		DeviceID:    state.DeviceID,
		SyncToken:   state.Token.String(),
		DeviceState: state,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create snapshot temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync snapshot temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close snapshot temp file: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot %s: %w", path, err)
	}

	s.log.Info().Str("path", path).Msg("snapshot saved")
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
