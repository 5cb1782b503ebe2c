package memory

import (
	"context"
	"sync"

	"nomen/pkg/platform/audit"
)

// InMemoryStore keeps audit events in memory, indexed by actor. For tests
// and single-node deployments.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[string][]audit.Event
}

// NewInMemoryStore constructs an empty store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[string][]audit.Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.Actor] = append(s.events[event.Actor], event)
	return nil
}

// ListByActor returns the events recorded for one actor, oldest first.
func (s *InMemoryStore) ListByActor(_ context.Context, actor string) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]audit.Event{}, s.events[actor]...), nil
}

// ListAll returns every recorded event.
func (s *InMemoryStore) ListAll(_ context.Context) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []audit.Event
	for _, events := range s.events {
		all = append(all, events...)
	}
	return all, nil
}

// Clear removes all events.
func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[string][]audit.Event)
}
