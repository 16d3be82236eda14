package usecase

import (
	"sync"

	"calendar-scheduler/internal/event/repository"
	"calendar-scheduler/pkg/gcalendar"
	pkgLog "calendar-scheduler/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository

	// Optional Google Calendar mirror. Nil disables mirroring entirely.
	mirror           *gcalendar.Client
	mirrorCalendarID string
	timezone         string

	mu        sync.Mutex
	mirrorIDs map[string]string // local event ID -> remote event ID
}

// New creates the event UseCase. mirror may be nil when no Google Calendar
// credentials are configured.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	mirror *gcalendar.Client,
	mirrorCalendarID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:                l,
		repo:             repo,
		mirror:           mirror,
		mirrorCalendarID: mirrorCalendarID,
		timezone:         timezone,
		mirrorIDs:        make(map[string]string),
	}
}
