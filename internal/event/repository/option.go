package repository

import "calendar-scheduler/internal/model"

// CreateEventOptions holds the fields of a new event; the store assigns the
// ID.
type CreateEventOptions struct {
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
