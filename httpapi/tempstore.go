package httpapi

import (
	"os"
	"sync"
)

// defaultTempCap is the outstanding-temp-file cap from spec §5 ("a bounded
// list (cap ≈ 50) of outstanding temp-files").
const defaultTempCap = 50

// TempStore tracks temporary files written for image downloads, evicting
// (deleting) the oldest file once more than cap are outstanding, and
// deleting everything on Close (server shutdown).
type TempStore struct {
	mu    sync.Mutex
	cap   int
	paths []string
}

// NewTempStore creates a TempStore with the given cap; a cap <= 0 uses
// defaultTempCap.
func NewTempStore(cap int) *TempStore {
	if cap <= 0 {
		cap = defaultTempCap
	}
	return &TempStore{cap: cap}
}

// Add records path as an outstanding temp file, evicting and deleting the
// oldest recorded file if the store is now over capacity.
func (s *TempStore) Add(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paths = append(s.paths, path)
	for len(s.paths) > s.cap {
		oldest := s.paths[0]
		s.paths = s.paths[1:]
		_ = os.Remove(oldest)
	}
}

// Remove deletes path and stops tracking it, for the "owned by exactly one
// response, deleted on response completion" case (spec §5).
func (s *TempStore) Remove(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.paths {
		if p == path {
			s.paths = append(s.paths[:i], s.paths[i+1:]...)
			break
		}
	}
	_ = os.Remove(path)
}

// Close deletes every remaining tracked temp file (spec §5: "Shutdown
// deletes all remaining temp-files").
func (s *TempStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.paths {
		_ = os.Remove(p)
	}
	s.paths = nil
}

// Len reports how many temp files are currently tracked.
func (s *TempStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.paths)
}
