package repository

import (
	"context"

	"calendar-scheduler/internal/model"
)

// Repository is the event store. Implementations assign IDs on create and
// keep insertion order stable for List.
type Repository interface {
	CreateEvent(ctx context.Context, opts CreateEventOptions) (model.Event, error)
	GetEvent(ctx context.Context, id string) (model.Event, error)
	ListEvents(ctx context.Context) ([]model.Event, error)
	UpdateEvent(ctx context.Context, e model.Event) (model.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
