package usecase

import (
	"context"

	"calendar-scheduler/internal/calendar"
	"calendar-scheduler/internal/event"
	"calendar-scheduler/internal/event/repository"
	"calendar-scheduler/internal/model"
)

// Create validates the time pair, stores the event and reports every
// existing event the new one overlaps with. Overlap detection only warns;
// whether a double booking is acceptable is the caller's decision, so the
// save is not rejected.
func (uc *implUseCase) Create(ctx context.Context, input event.CreateEventInput) (event.CreateEventOutput, error) {
	if v := calendar.ValidateEventTimes(input.StartTime, input.EndTime); !v.OK() {
		return event.CreateEventOutput{}, event.ErrInvalidTimeRange
	}

	existing, err := uc.repo.ListEvents(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create ListEvents: %v", err)
		return event.CreateEventOutput{}, err
	}

	candidate := model.Event{
		Title:            input.Title,
		Date:             input.Date,
		StartTime:        input.StartTime,
		EndTime:          input.EndTime,
		Description:      input.Description,
		Location:         input.Location,
		Category:         input.Category,
		Repeat:           input.Repeat,
		NotificationTime: input.NotificationTime,
	}
	overlaps := calendar.FindOverlapping(candidate, existing)

	created, err := uc.repo.CreateEvent(ctx, repository.CreateEventOptions{
		Title:            input.Title,
		Date:             input.Date,
		StartTime:        input.StartTime,
		EndTime:          input.EndTime,
		Description:      input.Description,
		Location:         input.Location,
		Category:         input.Category,
		Repeat:           input.Repeat,
		NotificationTime: input.NotificationTime,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateEvent: %v", err)
		return event.CreateEventOutput{}, err
	}

	uc.mirrorCreate(ctx, created)

	return event.CreateEventOutput{Event: created, Overlaps: overlaps}, nil
}
