package console

import (
	"context"
	"fmt"
	"sync"

	"driverStamps/pkg/logger"

	lru "github.com/hashicorp/golang-lru"
)

// SessionStore keeps the consoles of the most recently active drivers.
// Evicted consoles have their timers stopped.
type SessionStore struct {
	mu         sync.Mutex
	cache      *lru.Cache
	newConsole func() *Console
}

func NewSessionStore(capacity int, newConsole func() *Console) (*SessionStore, error) {
	cache, err := lru.NewWithEvict(capacity, func(key, value interface{}) {
		if c, ok := value.(*Console); ok {
			c.Close()
		}
		logger.Debug("driver session evicted", "session_id", key)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}

	return &SessionStore{
		cache:      cache,
		newConsole: newConsole,
	}, nil
}

func (s *SessionStore) Get(id string) (*Console, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}

	c, ok := v.(*Console)
	return c, ok
}

// GetOrCreate returns the console for id, creating it and loading its
// activity feed the first time the id is seen.
func (s *SessionStore) GetOrCreate(ctx context.Context, id string) *Console {
	s.mu.Lock()
	if c, ok := s.Get(id); ok {
		s.mu.Unlock()
		return c
	}

	c := s.newConsole()
	s.cache.Add(id, c)
	s.mu.Unlock()

	c.Refresh(ctx)

	return c
}

func (s *SessionStore) Len() int {
	return s.cache.Len()
}

// Purge drops every session, stopping their timers.
func (s *SessionStore) Purge() {
	s.cache.Purge()
}
