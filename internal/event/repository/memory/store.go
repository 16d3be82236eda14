// Package memory holds events in process memory. It replaces the globally
// mutated event list of earlier iterations with an explicit store handle that
// is passed to its consumers, so nothing else in the service carries mutable
// state.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"calendar-scheduler/internal/event/repository"
	"calendar-scheduler/internal/model"
	"calendar-scheduler/pkg/log"
)

type implStore struct {
	l      log.Logger
	mu     sync.RWMutex
	events []model.Event
}

// New creates an empty in-memory event store.
func New(l log.Logger) repository.Repository {
	return &implStore{l: l}
}

// NewWithEvents creates a store pre-seeded with events, mainly for tests and
// demos. IDs are taken as given.
func NewWithEvents(l log.Logger, events []model.Event) repository.Repository {
	s := &implStore{l: l}
	s.events = append(s.events, events...)
	return s
}

func (s *implStore) CreateEvent(ctx context.Context, opts repository.CreateEventOptions) (model.Event, error) {
	e := model.Event{
		ID:               uuid.NewString(),
		Title:            opts.Title,
		Date:             opts.Date,
		StartTime:        opts.StartTime,
		EndTime:          opts.EndTime,
		Description:      opts.Description,
		Location:         opts.Location,
		Category:         opts.Category,
		Repeat:           opts.Repeat,
		NotificationTime: opts.NotificationTime,
	}

	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()

	s.l.Debugf(ctx, "memory store: created event %s on %s", e.ID, e.Date)
	return e, nil
}

func (s *implStore) GetEvent(ctx context.Context, id string) (model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Event{}, repository.ErrNotFound
}

func (s *implStore) ListEvents(ctx context.Context) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

func (s *implStore) UpdateEvent(ctx context.Context, e model.Event) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == e.ID {
			s.events[i] = e
			return e, nil
		}
	}
	return model.Event{}, repository.ErrNotFound
}

func (s *implStore) DeleteEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
