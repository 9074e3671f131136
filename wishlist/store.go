// Package wishlist is the durable, device-local wishlist store: one JSON
// file holding an array of product snapshots, shared last-write-wins by every
// process on the device.
package wishlist

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/ArmanNagariya-Developer/azhari-attar/notify"

	"go.uber.org/zap"
)

// AddResult reports whether an Add actually persisted a new entry.
type AddResult struct {
	Added  bool   `json:"added"`
	Reason string `json:"reason,omitempty"`
}

// RemoveResult reports whether a Remove found anything to delete.
type RemoveResult struct {
	Removed bool `json:"removed"`
}

// Store synchronizes every operation through the backing file, the same way
// the views always re-read local storage before touching it. That keeps
// concurrent processes on last-write-wins semantics with no merge logic.
//
// Storage failures never surface to callers: an unreadable or malformed file
// reads as an empty wishlist, and write failures are logged and swallowed.
// The wishlist is a best-effort convenience feature, not a system of record.
type Store struct {
	path string
	hub  *notify.Hub
	log  *zap.Logger

	// serializes read-modify-write cycles within this process only
	mu sync.Mutex
}

func NewStore(path string, hub *notify.Hub, log *zap.Logger) *Store {
	return &Store{path: path, hub: hub, log: log}
}

// Contains reports whether the product id is currently saved.
func (s *Store) Contains(id int) bool {
	for _, e := range s.load() {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Add persists a snapshot of p unless its id is already present. On success
// the change notification is published before Add returns.
func (s *Store) Add(p models.Product) AddResult {
	s.mu.Lock()
	entries := s.load()
	for _, e := range entries {
		if e.ID == p.ID {
			s.mu.Unlock()
			return AddResult{Added: false, Reason: "already present"}
		}
	}
	entries = append(entries, models.Snapshot(p))
	s.save(entries)
	s.mu.Unlock()

	s.publishChanged(len(entries))
	return AddResult{Added: true}
}

// Remove deletes the entry with the given id. Removing an absent id is a
// no-op with no notification.
func (s *Store) Remove(id int) RemoveResult {
	s.mu.Lock()
	entries := s.load()
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		s.mu.Unlock()
		return RemoveResult{Removed: false}
	}
	s.save(kept)
	s.mu.Unlock()

	s.publishChanged(len(kept))
	return RemoveResult{Removed: true}
}

// Clear empties the wishlist.
func (s *Store) Clear() {
	s.mu.Lock()
	s.save([]models.WishlistEntry{})
	s.mu.Unlock()

	s.publishChanged(0)
}

// List returns the saved snapshots. Order is whatever the file holds;
// callers needing a stable display order sort explicitly.
func (s *Store) List() []models.WishlistEntry {
	return s.load()
}

// Count reports how many entries are saved, for the navigation badge.
func (s *Store) Count() int {
	return len(s.load())
}

func (s *Store) publishChanged(count int) {
	s.hub.Publish(notify.Event{Name: notify.EventWishlistChanged, Payload: count})
}

// load reads the full wishlist from disk, failing open to empty: a missing
// key is an empty array, and corrupt records are dropped rather than crashing
// the read path.
func (s *Store) load() []models.WishlistEntry {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("wishlist storage unreadable, treating as empty", zap.Error(err))
		}
		return []models.WishlistEntry{}
	}

	var entries []models.WishlistEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.log.Warn("wishlist storage malformed, treating as empty", zap.Error(err))
		return []models.WishlistEntry{}
	}
	if entries == nil {
		entries = []models.WishlistEntry{}
	}
	return entries
}

// save writes the full array durably: temp file in the same directory, then
// rename, so other contexts never observe a half-written key.
func (s *Store) save(entries []models.WishlistEntry) {
	data, err := json.Marshal(entries)
	if err != nil {
		s.log.Warn("wishlist encode failed", zap.Error(err))
		return
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "wishlist-*.json")
	if err != nil {
		s.log.Warn("wishlist write failed", zap.Error(err))
		return
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		s.log.Warn("wishlist write failed", zap.Error(err))
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		s.log.Warn("wishlist write failed", zap.Error(err))
		return
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		s.log.Warn("wishlist write failed", zap.Error(err))
	}
}
