package calendar_test

import (
	"reflect"
	"testing"
	"time"

	"calendar-scheduler/internal/calendar"
	"calendar-scheduler/internal/model"
)

func TestUpcomingEvents(t *testing.T) {
	events := []model.Event{
		titledEvent("1", "이벤트 1", "2025-07-01"),
		titledEvent("2", "이벤트 2", "2025-07-01"),
		titledEvent("3", "테스트 데이터", "2025-06-04"),
		titledEvent("4", "eVenT 3", "2025-08-08"),
	}
	for i := range events[:2] {
		events[i].StartTime = "14:30"
		events[i].EndTime = "15:30"
	}

	t.Run("Threshold reached", func(t *testing.T) {
		now := time.Date(2025, 7, 1, 14, 29, 0, 0, time.Local)
		got := calendar.UpcomingEvents(events, now, nil)
		if !reflect.DeepEqual(got, events[:2]) {
			t.Errorf("UpcomingEvents = %v, want %v", got, events[:2])
		}
	})

	t.Run("Already notified IDs are skipped", func(t *testing.T) {
		now := time.Date(2025, 7, 1, 14, 29, 0, 0, time.Local)
		got := calendar.UpcomingEvents(events, now, map[string]bool{"2": true})
		if !reflect.DeepEqual(got, events[:1]) {
			t.Errorf("UpcomingEvents = %v, want %v", got, events[:1])
		}
	})

	t.Run("Threshold not yet reached", func(t *testing.T) {
		now := time.Date(2025, 7, 1, 13, 0, 0, 0, time.Local)
		if got := calendar.UpcomingEvents(events, now, nil); len(got) != 0 {
			t.Errorf("UpcomingEvents = %v, want empty", got)
		}
	})

	t.Run("Started events no longer match", func(t *testing.T) {
		now := time.Date(2025, 11, 1, 13, 0, 0, 0, time.Local)
		if got := calendar.UpcomingEvents(events, now, nil); len(got) != 0 {
			t.Errorf("UpcomingEvents = %v, want empty", got)
		}
	})

	t.Run("Exactly at threshold is included, exactly at start is not", func(t *testing.T) {
		at := time.Date(2025, 7, 1, 14, 0, 0, 0, time.Local) // start - 30m
		got := calendar.UpcomingEvents(events, at, nil)
		if !reflect.DeepEqual(got, events[:2]) {
			t.Errorf("UpcomingEvents at threshold = %v, want %v", got, events[:2])
		}

		start := time.Date(2025, 7, 1, 14, 30, 0, 0, time.Local)
		if got := calendar.UpcomingEvents(events, start, nil); len(got) != 0 {
			t.Errorf("UpcomingEvents at start = %v, want empty", got)
		}
	})

	// Documented property: an event never recorded keeps matching on every
	// poll inside its window, so callers must record returned IDs
	// immediately.
	t.Run("Unrecorded event fires again on the next poll", func(t *testing.T) {
		now := time.Date(2025, 7, 1, 14, 29, 0, 0, time.Local)
		first := calendar.UpcomingEvents(events, now, nil)
		second := calendar.UpcomingEvents(events, now, nil)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("repeat poll without recording changed the result: %v vs %v", first, second)
		}

		notified := map[string]bool{}
		for _, e := range first {
			notified[e.ID] = true
		}
		if got := calendar.UpcomingEvents(events, now, notified); len(got) != 0 {
			t.Errorf("UpcomingEvents after recording = %v, want empty", got)
		}
	})

	// Start instants come out of ParseDateTime in the local frame, so the
	// threshold must hold against a wall clock in any host timezone, not just
	// UTC.
	t.Run("Zoned clock fires at the wall-clock threshold", func(t *testing.T) {
		seoul, err := time.LoadLocation("Asia/Seoul")
		if err != nil {
			t.Fatalf("LoadLocation: %v", err)
		}
		saved := time.Local
		time.Local = seoul
		defer func() { time.Local = saved }()

		e := titledEvent("8", "회의", "2025-07-01")
		e.StartTime = "14:30"
		e.EndTime = "15:30"
		e.NotificationTime = 10

		now := time.Date(2025, 7, 1, 14, 25, 0, 0, seoul)
		got := calendar.UpcomingEvents([]model.Event{e}, now, nil)
		if len(got) != 1 || got[0].ID != "8" {
			t.Errorf("UpcomingEvents with zoned clock = %v, want the 14:30 event", got)
		}
	})

	t.Run("Malformed start never matches", func(t *testing.T) {
		broken := titledEvent("9", "잘못된 일정", "2025-99-01")
		now := time.Date(2025, 7, 1, 14, 29, 0, 0, time.Local)
		if got := calendar.UpcomingEvents([]model.Event{broken}, now, nil); len(got) != 0 {
			t.Errorf("UpcomingEvents = %v, want empty", got)
		}
	})
}

func TestNotificationMessage(t *testing.T) {
	e := titledEvent("1", "이벤트 1", "2025-07-01")
	e.StartTime = "14:30"
	e.NotificationTime = 30

	want := "30분 후 이벤트 1 일정이 시작됩니다."
	if got := calendar.NotificationMessage(e); got != want {
		t.Errorf("NotificationMessage = %q, want %q", got, want)
	}
}
