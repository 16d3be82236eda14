package usecase_test

import (
	"context"

	"calendar-scheduler/internal/event/repository"
	"calendar-scheduler/internal/model"
)

// mockLogger discards everything.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// fakeRepo keeps events in a slice and lets individual calls be overridden
// per test.
type fakeRepo struct {
	events []model.Event
	nextID int

	listFunc   func() ([]model.Event, error)
	createFunc func(opts repository.CreateEventOptions) (model.Event, error)
}

func (f *fakeRepo) CreateEvent(ctx context.Context, opts repository.CreateEventOptions) (model.Event, error) {
	if f.createFunc != nil {
		return f.createFunc(opts)
	}
	f.nextID++
	e := model.Event{
		ID:               string(rune('0' + f.nextID)),
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
	f.events = append(f.events, e)
	return e, nil
}

func (f *fakeRepo) GetEvent(ctx context.Context, id string) (model.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Event{}, repository.ErrNotFound
}

func (f *fakeRepo) ListEvents(ctx context.Context) ([]model.Event, error) {
	if f.listFunc != nil {
		return f.listFunc()
	}
	out := make([]model.Event, len(f.events))
	copy(out, f.events)
	return out, nil
}

func (f *fakeRepo) UpdateEvent(ctx context.Context, e model.Event) (model.Event, error) {
	for i := range f.events {
		if f.events[i].ID == e.ID {
			f.events[i] = e
			return e, nil
		}
	}
	return model.Event{}, repository.ErrNotFound
}

func (f *fakeRepo) DeleteEvent(ctx context.Context, id string) error {
	for i := range f.events {
		if f.events[i].ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func storedEvent(id, title, date, start, end string) model.Event {
	return model.Event{
		ID:        id,
		Title:     title,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Repeat:    model.RepeatInfo{Type: model.RepeatNone, Interval: 1},
	}
}
