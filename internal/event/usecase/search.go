package usecase

import (
	"context"

	"calendar-scheduler/internal/calendar"
	"calendar-scheduler/internal/event"
)

func (uc *implUseCase) List(ctx context.Context) (event.ListEventsOutput, error) {
	events, err := uc.repo.ListEvents(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEvents: %v", err)
		return event.ListEventsOutput{}, err
	}
	return event.ListEventsOutput{Events: events}, nil
}

// Search applies the view window for the reference date, then the optional
// search term, in store order.
func (uc *implUseCase) Search(ctx context.Context, input event.SearchEventsInput) (event.SearchEventsOutput, error) {
	events, err := uc.repo.ListEvents(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search ListEvents: %v", err)
		return event.SearchEventsOutput{}, err
	}

	filtered := calendar.FilterEvents(events, input.Term, input.ReferenceDate, input.View)
	return event.SearchEventsOutput{Events: filtered}, nil
}
