package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/prxstudio/reel/internal/relay"
)

// Snapshot represents the latest relay data available to the UI.
type Snapshot struct {
	Relay               relay.Status
	HasRelay            bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the relay has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous data is
// kept but the error is recorded for visibility.
func (s *Store) Update(status *relay.Status, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	if status != nil {
		s.snapshot.Relay = cloneStatus(*status)
		s.snapshot.HasRelay = true
	} else {
		s.snapshot.Relay = relay.Status{}
		s.snapshot.HasRelay = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Relay = cloneStatus(s.snapshot.Relay)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneStatus(st relay.Status) relay.Status {
	if len(st.Recent) == 0 {
		st.Recent = nil
		return st
	}
	dup := make([]relay.Delivery, len(st.Recent))
	copy(dup, st.Recent)
	st.Recent = dup
	return st
}
