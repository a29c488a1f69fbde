// Package store keeps recent analyses in memory so report downloads can be
// served by ID after the analysis request has returned.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"cng-analyzer/internal/model"
)

// DefaultTTL is how long an analysis stays downloadable.
const DefaultTTL = 1 * time.Hour

// ErrNotFound is returned for unknown or expired IDs.
var ErrNotFound = errors.New("analysis not found")

// Entry is one stored analysis.
type Entry struct {
	ID        string
	Scenario  model.Scenario
	Result    model.Result
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store is an in-memory, TTL-bounded map of analyses keyed by a random UUID.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	ttl     time.Duration
	now     func() time.Time
}

// New returns an empty store. A ttl <= 0 uses DefaultTTL.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		entries: make(map[string]*Entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Put stores an analysis and returns its new ID.
func (s *Store) Put(sc model.Scenario, r model.Result) Entry {
	now := s.now()
	e := &Entry{
		ID:        uuid.NewString(),
		Scenario:  sc,
		Result:    r,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[e.ID] = e
	return *e
}

// Get returns the analysis for id, or ErrNotFound if it is unknown or expired.
func (s *Store) Get(id string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok || s.now().After(e.ExpiresAt) {
		return Entry{}, ErrNotFound
	}
	return *e, nil
}

// Len counts stored entries, expired ones included until the next sweep.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep removes expired entries and reports how many were dropped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for id, e := range s.entries {
		if now.After(e.ExpiresAt) {
			delete(s.entries, id)
			n++
		}
	}
	return n
}

// Run sweeps expired entries every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
