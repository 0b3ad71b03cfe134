// Package catalog holds the client's local copy of the event catalog.
package catalog

import (
	"context"
	"slices"
	"sync"

	"github.com/stpnv0/EventHub/internal/client/ports"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Store owns the event snapshot. Remote-backed methods never patch the snapshot
// speculatively: the only writers are Refresh and the Remove/Restore pair.
type Store struct {
	mu     sync.RWMutex
	events []*domain.Event
	remote ports.EventRemote
	logger logger.Logger
}

func NewStore(remote ports.EventRemote, logger logger.Logger) *Store {
	return &Store{
		remote: remote,
		logger: logger,
	}
}

// List returns the current snapshot. The slice is a copy; the events are shared.
func (s *Store) List() []*domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.events)
}

func (s *Store) Find(id string) (*domain.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// Refresh replaces the whole snapshot with the remote catalog.
// On failure the previous snapshot is kept.
func (s *Store) Refresh(ctx context.Context) error {
	events, err := s.remote.GetEvents(ctx)
	if err != nil {
		return &domain.FetchError{Op: "events", Err: err}
	}

	s.mu.Lock()
	s.events = events
	s.mu.Unlock()

	s.logger.Debug("catalog refreshed", logger.Int("events", len(events)))

	return nil
}

func (s *Store) Create(ctx context.Context, draft domain.EventDraft) error {
	created, err := s.remote.CreateEvent(ctx, draft)
	if err != nil {
		return &domain.WriteError{Op: "create", Err: err}
	}

	if created != nil {
		s.logger.Debug("event created", logger.String("event_id", created.ID))
	}
	return nil
}

func (s *Store) Update(ctx context.Context, event *domain.Event) error {
	if err := s.remote.UpdateEvent(ctx, event); err != nil {
		return &domain.WriteError{Op: "update", Err: err}
	}
	return nil
}

func (s *Store) DeleteOne(ctx context.Context, id string) error {
	if err := s.remote.DeleteEvent(ctx, id); err != nil {
		return &domain.WriteError{Op: "delete", Err: err}
	}
	return nil
}

func (s *Store) DeleteAll(ctx context.Context) error {
	if err := s.remote.DeleteAllEvents(ctx); err != nil {
		return &domain.WriteError{Op: "delete all", Err: err}
	}
	return nil
}

// Remove drops the event with the given id from the snapshot and returns the
// snapshot as it was before, for Restore.
func (s *Store) Remove(id string) []*domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.events
	s.events = slices.DeleteFunc(slices.Clone(previous), func(e *domain.Event) bool {
		return e.ID == id
	})
	return previous
}

func (s *Store) Restore(previous []*domain.Event) {
	s.mu.Lock()
	s.events = previous
	s.mu.Unlock()
}

func (s *Store) Reset() {
	s.mu.Lock()
	s.events = nil
	s.mu.Unlock()
}
