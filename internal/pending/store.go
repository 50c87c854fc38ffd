// Package pending is a single-use mailbox for references awaiting the
// user's format choice. Tokens are opaque; the store knows nothing about
// platforms or file shapes.
package pending

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"roundbot/internal/types"
)

type entry struct {
	ref       types.ContentReference
	createdAt time.Time
}

// Store maps opaque tokens to not-yet-consumed references. Callers that
// track link and upload references separately hold two Stores so the
// token namespaces never mix.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func New() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Register stores the reference and returns a fresh token. Tokens are
// unique among live entries; concurrent registration never collides.
func (s *Store) Register(ref types.ContentReference) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.entries[token] = entry{ref: ref, createdAt: s.now()}
	s.mu.Unlock()
	return token
}

// Consume atomically removes and returns the entry for token. A second
// call with the same token reports false, which callers treat as an
// ordinary stale tap rather than an error condition.
func (s *Store) Consume(token string) (types.ContentReference, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[token]
	if !ok {
		return types.ContentReference{}, false
	}
	delete(s.entries, token)
	return e.ref, true
}

// Len reports the number of live entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep evicts entries registered more than ttl before now and returns
// how many were dropped. Unconsumed entries are a slow leak otherwise.
func (s *Store) Sweep(now time.Time, ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for token, e := range s.entries {
		if now.Sub(e.createdAt) > ttl {
			delete(s.entries, token)
			n++
		}
	}
	return n
}

// RunSweeper sweeps the given stores on a fixed interval until ctx is
// cancelled. Swept counts are reported through onSwept when non-zero.
func RunSweeper(ctx context.Context, interval, ttl time.Duration, onSwept func(int), stores ...*Store) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			total := 0
			for _, s := range stores {
				total += s.Sweep(now, ttl)
			}
			if total > 0 && onSwept != nil {
				onSwept(total)
			}
		}
	}
}
