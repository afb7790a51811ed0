package quotestore

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process Store for single-instance deployments and tests.
type Memory struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[int64]entry

	// now is swappable in tests
	now func() time.Time
}

type entry struct {
	quote    PendingQuote
	deadline time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl: ttl,
		m:   make(map[int64]entry),
		now: time.Now,
	}
}

func (s *Memory) Put(_ context.Context, userID int64, q PendingQuote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[userID] = entry{quote: q, deadline: s.now().Add(s.ttl)}
	return nil
}

func (s *Memory) Pop(_ context.Context, userID int64) (*PendingQuote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.m[userID]
	if !ok {
		return nil, nil
	}
	delete(s.m, userID)

	if s.now().After(e.deadline) {
		return nil, nil
	}
	q := e.quote
	return &q, nil
}

func (s *Memory) Clear(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, userID)
	return nil
}
