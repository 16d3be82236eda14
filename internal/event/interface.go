package event

import "context"

// UseCase is the event domain's business logic surface.
type UseCase interface {
	Create(ctx context.Context, input CreateEventInput) (CreateEventOutput, error)
	List(ctx context.Context) (ListEventsOutput, error)
	Detail(ctx context.Context, id string) (DetailEventOutput, error)
	Update(ctx context.Context, input UpdateEventInput) (UpdateEventOutput, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, input SearchEventsInput) (SearchEventsOutput, error)
}
