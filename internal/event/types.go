package event

import (
	"time"

	"calendar-scheduler/internal/model"
)

// --- UseCase Inputs ---

type CreateEventInput struct {
	Title            string
	Date             string
	StartTime        string
	EndTime          string
	Description      string
	Location         string
	Category         string
	Repeat           model.RepeatInfo
	NotificationTime int
}

type UpdateEventInput struct {
	ID               string
	Title            string
	Date             string
	StartTime        string
	EndTime          string
	Description      string
	Location         string
	Category         string
	Repeat           model.RepeatInfo
	NotificationTime int
}

type SearchEventsInput struct {
	Term          string
	ReferenceDate time.Time
	View          model.ViewMode
}

// --- UseCase Outputs ---

// CreateEventOutput carries the stored event plus every existing event it
// overlaps with. Overlaps are a warning for the caller to surface; the save
// has already happened.
type CreateEventOutput struct {
	Event    model.Event
	Overlaps []model.Event
}

type UpdateEventOutput struct {
	Event    model.Event
	Overlaps []model.Event
}

type ListEventsOutput struct {
	Events []model.Event
}

type DetailEventOutput struct {
	Event model.Event
}

type SearchEventsOutput struct {
	Events []model.Event
}
