package model

// RepeatType enumerates the supported repeat descriptors. The descriptor is
// carried through the system but never expanded into instances here.
type RepeatType string

const (
	RepeatNone    RepeatType = "none"
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
	RepeatYearly  RepeatType = "yearly"
)

// RepeatInfo describes how an event repeats.
type RepeatInfo struct {
	Type     RepeatType // none, daily, weekly, monthly, yearly
	Interval int        // every N units, >= 0
	EndDate  string     // optional YYYY-MM-DD bound
}

// Event is a scheduled calendar entry. Date and times are locale-naive
// wall-clock strings ("YYYY-MM-DD", "HH:MM"); identity is ID, unique within
// the active event set.
type Event struct {
	ID               string
	Title            string
	Date             string // YYYY-MM-DD
	StartTime        string // HH:MM
	EndTime          string // HH:MM
	Description      string
	Location         string
	Category         string
	Repeat           RepeatInfo
	NotificationTime int // minutes before start
}

// ViewMode selects the calendar view window.
type ViewMode string

const (
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// Notification is the ephemeral alert produced when an event crosses its
// notification threshold. ID equals the source event's ID.
type Notification struct {
	ID      string
	Message string
}

// Environment names the runtime environment the service runs in.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
