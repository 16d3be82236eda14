package usecase

import (
	"context"
	"errors"

	"calendar-scheduler/internal/calendar"
	"calendar-scheduler/internal/event"
	"calendar-scheduler/internal/event/repository"
	"calendar-scheduler/internal/model"
)

func (uc *implUseCase) Detail(ctx context.Context, id string) (event.DetailEventOutput, error) {
	e, err := uc.repo.GetEvent(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return event.DetailEventOutput{}, event.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "uc.Detail GetEvent: %v", err)
		return event.DetailEventOutput{}, err
	}
	return event.DetailEventOutput{Event: e}, nil
}

// Update replaces the stored event and, like Create, reports overlaps with
// the other events without rejecting the save. The edited event itself is
// excluded from the overlap pool.
func (uc *implUseCase) Update(ctx context.Context, input event.UpdateEventInput) (event.UpdateEventOutput, error) {
	if v := calendar.ValidateEventTimes(input.StartTime, input.EndTime); !v.OK() {
		return event.UpdateEventOutput{}, event.ErrInvalidTimeRange
	}

	if _, err := uc.repo.GetEvent(ctx, input.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return event.UpdateEventOutput{}, event.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "uc.Update GetEvent: %v", err)
		return event.UpdateEventOutput{}, err
	}

	existing, err := uc.repo.ListEvents(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update ListEvents: %v", err)
		return event.UpdateEventOutput{}, err
	}

	updated := model.Event{
		ID:               input.ID,
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
	overlaps := calendar.FindOverlapping(updated, existing)

	stored, err := uc.repo.UpdateEvent(ctx, updated)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return event.UpdateEventOutput{}, event.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "uc.Update UpdateEvent: %v", err)
		return event.UpdateEventOutput{}, err
	}

	uc.mirrorUpdate(ctx, stored)

	return event.UpdateEventOutput{Event: stored, Overlaps: overlaps}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteEvent(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return event.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteEvent: %v", err)
		return err
	}

	uc.mirrorDelete(ctx, id)
	return nil
}
