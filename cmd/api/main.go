package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calendar-scheduler/config"
	_ "calendar-scheduler/docs" // Swagger docs
	"calendar-scheduler/internal/event/repository/memory"
	eventUC "calendar-scheduler/internal/event/usecase"
	"calendar-scheduler/internal/holiday"
	"calendar-scheduler/internal/httpserver"
	"calendar-scheduler/internal/middleware"
	"calendar-scheduler/internal/notifier"
	"calendar-scheduler/pkg/gcalendar"
	pkgLog "calendar-scheduler/pkg/log"
)

// @title       Calendar Scheduler API
// @description Calendar event scheduling with view grids, holidays and notifications.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := pkgLog.Init(pkgLog.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Event domain
	repo := memory.New(logger)

	// Google Calendar mirror (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar mirror initialized")
		}
	}

	uc := eventUC.New(logger, repo, calendarClient, cfg.GoogleCalendar.CalendarID, cfg.Calendar.Timezone)

	// 4. Holidays
	holidays := holiday.NewProvider()

	// 5. Notifier
	n := notifier.New(logger, uc, time.Now)
	if err := n.Start(cfg.Notifier.CronSpec); err != nil {
		logger.Errorf(ctx, "Failed to start notifier: %v", err)
		return
	}
	defer n.Stop()
	logger.Infof(ctx, "Notifier polling on %q", cfg.Notifier.CronSpec)

	// 6. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit.RequestsPerMin)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		EventUC:         uc,
		HolidayProvider: holidays,
		Notifier:        n,
		WeekStart:       cfg.Calendar.WeekStart,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
