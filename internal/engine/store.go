package engine

import (
	"context"
	"sync"
	"time"

	"sladrehank/internal/models"
)

// DefaultTTL is how long one fetched table is reused across page renders.
const DefaultTTL = time.Hour

// Store is a single-entry, time-expiring cache around the fetch+transform
// pipeline. It populates on first use, reuses the table until the TTL
// passes, and has no invalidation beyond expiry. Failed fetches are not
// cached: the error is returned and the next call retries, so a page
// reload after an outage gets fresh data.
type Store struct {
	fetch func(ctx context.Context) ([]models.Record, error)
	ttl   time.Duration
	now   func() time.Time

	mu        sync.Mutex
	table     []models.Record
	fetched   bool
	fetchedAt time.Time
}

// NewStore wraps a fetch function with a TTL cache. A non-positive ttl
// falls back to DefaultTTL.
func NewStore(fetch func(ctx context.Context) ([]models.Record, error), ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		fetch: fetch,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Table returns the cached table, fetching when the cache is empty or
// expired. Concurrent renders during a fetch wait on the same lock, so the
// upstream API sees at most one request per expiry window.
func (s *Store) Table(ctx context.Context) ([]models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fetched && s.now().Sub(s.fetchedAt) < s.ttl {
		return s.table, nil
	}

	table, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	s.table = table
	s.fetched = true
	s.fetchedAt = s.now()
	return table, nil
}
