package dataset

import "sync/atomic"

// Store publishes the current Snapshot to concurrent readers. Reporting
// requests read whatever snapshot is current at that moment; a refresh
// replaces all three tables at once by swapping the pointer, so a request
// never observes a mix of old and new tables.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store holding the given initial snapshot.
// A nil snapshot is replaced with Empty().
func NewStore(snap *Snapshot) *Store {
	s := &Store{}
	if snap == nil {
		snap = Empty()
	}
	s.current.Store(snap)
	return s
}

// Current returns the currently published snapshot.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Swap publishes a new snapshot. Nil snapshots are ignored.
func (s *Store) Swap(snap *Snapshot) {
	if snap == nil {
		return
	}
	s.current.Store(snap)
}
