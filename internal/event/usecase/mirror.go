package usecase

import (
	"context"

	"calendar-scheduler/internal/calendar"
	"calendar-scheduler/internal/model"
	"calendar-scheduler/pkg/gcalendar"
)

// The mirror is best effort: failures are logged and never surface to the
// request that triggered them.

func (uc *implUseCase) mirrorCreate(ctx context.Context, e model.Event) {
	if uc.mirror == nil {
		return
	}

	r := calendar.EventRange(e)
	if !r.Valid() {
		uc.l.Warnf(ctx, "mirror: skipping event %s with unparseable times", e.ID)
		return
	}

	remote, err := uc.mirror.CreateEvent(ctx, uc.mirrorInput(e, r))
	if err != nil {
		uc.l.Warnf(ctx, "mirror: create for event %s failed: %v", e.ID, err)
		return
	}

	uc.mu.Lock()
	uc.mirrorIDs[e.ID] = remote.ID
	uc.mu.Unlock()
}

func (uc *implUseCase) mirrorUpdate(ctx context.Context, e model.Event) {
	if uc.mirror == nil {
		return
	}

	uc.mu.Lock()
	remoteID, ok := uc.mirrorIDs[e.ID]
	uc.mu.Unlock()
	if !ok {
		// Never mirrored, e.g. created before credentials were configured.
		uc.mirrorCreate(ctx, e)
		return
	}

	r := calendar.EventRange(e)
	if !r.Valid() {
		uc.l.Warnf(ctx, "mirror: skipping event %s with unparseable times", e.ID)
		return
	}

	if _, err := uc.mirror.UpdateEvent(ctx, remoteID, uc.mirrorInput(e, r)); err != nil {
		uc.l.Warnf(ctx, "mirror: update for event %s failed: %v", e.ID, err)
	}
}

func (uc *implUseCase) mirrorDelete(ctx context.Context, id string) {
	if uc.mirror == nil {
		return
	}

	uc.mu.Lock()
	remoteID, ok := uc.mirrorIDs[id]
	delete(uc.mirrorIDs, id)
	uc.mu.Unlock()
	if !ok {
		return
	}

	if err := uc.mirror.DeleteEvent(ctx, uc.mirrorCalendarID, remoteID); err != nil {
		uc.l.Warnf(ctx, "mirror: delete for event %s failed: %v", id, err)
	}
}

func (uc *implUseCase) mirrorInput(e model.Event, r calendar.DateRange) gcalendar.EventInput {
	return gcalendar.EventInput{
		CalendarID:  uc.mirrorCalendarID,
		Summary:     e.Title,
		Description: e.Description,
		Location:    e.Location,
		StartTime:   r.Start,
		EndTime:     r.End,
		Timezone:    uc.timezone,
	}
}
