package services

import (
	"sync"
	"time"
)

// Collection names a backend collection mirrored by a manager.
type Collection string

const (
	CollectionOrders          Collection = "orders"
	CollectionInTransitOrders Collection = "in_transit_orders"
)

// SyncRecord is what the last sync of one collection did.
type SyncRecord struct {
	CycleID     string
	StartedAt   time.Time
	FinishedAt  time.Time
	LastSuccess time.Time
	Loaded      int
	Skipped     int
	// LastError is empty after a successful cycle.
	LastError string
}

// SyncStatus records sync outcomes per collection. It is safe for concurrent use.
type SyncStatus struct {
	mu      sync.RWMutex
	records map[Collection]SyncRecord
}

func NewSyncStatus() *SyncStatus {
	return &SyncStatus{records: make(map[Collection]SyncRecord)}
}

// RecordSuccess stores a completed cycle and clears the last error.
func (s *SyncStatus) RecordSuccess(c Collection, cycleID string, startedAt, finishedAt time.Time, loaded, skipped int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[c] = SyncRecord{
		CycleID:     cycleID,
		StartedAt:   startedAt,
		FinishedAt:  finishedAt,
		LastSuccess: finishedAt,
		Loaded:      loaded,
		Skipped:     skipped,
	}
}

// RecordFailure stores a failed cycle. The previous success time and counts
// are kept because the index still holds that snapshot.
func (s *SyncStatus) RecordFailure(c Collection, cycleID string, startedAt, finishedAt time.Time, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.records[c]
	rec.CycleID = cycleID
	rec.StartedAt = startedAt
	rec.FinishedAt = finishedAt
	rec.LastError = err.Error()
	s.records[c] = rec
}

// Get returns the record for c and whether any cycle has run.
func (s *SyncStatus) Get(c Collection) (SyncRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[c]
	return rec, ok
}
