package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-scheduler/internal/event"
	"calendar-scheduler/internal/holiday"
	"calendar-scheduler/internal/middleware"
	"calendar-scheduler/internal/notifier"
	pkgLog "calendar-scheduler/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	eventUC   event.UseCase
	holidays  holiday.Provider
	notifier  *notifier.Notifier
	weekStart string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	EventUC         event.UseCase
	HolidayProvider holiday.Provider
	Notifier        *notifier.Notifier
	WeekStart       string
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		eventUC:     cfg.EventUC,
		holidays:    cfg.HolidayProvider,
		notifier:    cfg.Notifier,
		weekStart:   cfg.WeekStart,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.eventUC == nil {
		return errors.New("event usecase is required")
	}
	if srv.holidays == nil {
		return errors.New("holiday provider is required")
	}
	return nil
}
