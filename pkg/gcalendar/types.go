package gcalendar

import "time"

// EventInput is the payload for creating or updating a mirrored Google
// Calendar event.
type EventInput struct {
	CalendarID  string // empty means "primary"
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Asia/Seoul"
}

// Event is the simplified view of a mirrored Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	HTMLLink    string
	StartTime   time.Time
	EndTime     time.Time
}
