package calendar_test

import (
	"reflect"
	"testing"

	"calendar-scheduler/internal/calendar"
	"calendar-scheduler/internal/model"
)

func timedEvent(id, date, start, end string) model.Event {
	e := baseEvent()
	e.ID = id
	e.Date = date
	e.StartTime = start
	e.EndTime = end
	return e
}

func TestIsOverlapping(t *testing.T) {
	tests := []struct {
		name string
		a, b model.Event
		want bool
	}{
		{
			name: "Intersecting ranges",
			a:    timedEvent("1", "2025-07-01", "14:30", "15:30"),
			b:    timedEvent("2", "2025-07-01", "15:00", "15:30"),
			want: true,
		},
		{
			name: "Disjoint ranges",
			a:    timedEvent("1", "2025-07-01", "14:30", "15:30"),
			b:    timedEvent("2", "2025-07-01", "16:00", "17:00"),
			want: false,
		},
		{
			name: "Touching endpoints",
			a:    timedEvent("1", "2025-07-01", "14:00", "15:00"),
			b:    timedEvent("2", "2025-07-01", "15:00", "16:00"),
			want: false,
		},
		{
			name: "Different dates",
			a:    timedEvent("1", "2025-07-01", "14:30", "15:30"),
			b:    timedEvent("2", "2025-07-02", "14:30", "15:30"),
			want: false,
		},
		{
			name: "Contained range",
			a:    timedEvent("1", "2025-07-01", "13:00", "17:00"),
			b:    timedEvent("2", "2025-07-01", "14:00", "15:00"),
			want: true,
		},
		{
			name: "Invalid range never overlaps",
			a:    timedEvent("1", "2025-29-02", "14:30", "15:30"),
			b:    timedEvent("2", "2025-07-01", "14:30", "15:30"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calendar.IsOverlapping(tt.a, tt.b); got != tt.want {
				t.Errorf("IsOverlapping = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := calendar.IsOverlapping(tt.b, tt.a); got != tt.want {
				t.Errorf("IsOverlapping reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindOverlapping(t *testing.T) {
	pool := []model.Event{
		timedEvent("1", "2025-07-01", "14:30", "15:30"),
		timedEvent("2", "2025-07-01", "15:00", "15:30"),
	}

	t.Run("Returns every intersecting event in pool order", func(t *testing.T) {
		candidate := timedEvent("3", "2025-07-01", "15:10", "15:30")
		got := calendar.FindOverlapping(candidate, pool)
		if !reflect.DeepEqual(got, pool) {
			t.Errorf("FindOverlapping = %v, want %v", got, pool)
		}
	})

	t.Run("No intersections yields empty slice", func(t *testing.T) {
		candidate := timedEvent("3", "2025-08-30", "15:10", "15:30")
		got := calendar.FindOverlapping(candidate, pool)
		if len(got) != 0 {
			t.Errorf("FindOverlapping = %v, want empty", got)
		}
	})

	t.Run("Candidate present in pool is skipped by ID", func(t *testing.T) {
		candidate := timedEvent("1", "2025-07-01", "14:30", "15:30")
		got := calendar.FindOverlapping(candidate, pool)
		want := pool[1:]
		if !reflect.DeepEqual(got, want) {
			t.Errorf("FindOverlapping = %v, want %v", got, want)
		}
	})

	t.Run("Pool order is preserved under reordering", func(t *testing.T) {
		candidate := timedEvent("3", "2025-07-01", "15:10", "15:30")
		reversed := []model.Event{pool[1], pool[0]}
		got := calendar.FindOverlapping(candidate, reversed)
		if !reflect.DeepEqual(got, reversed) {
			t.Errorf("FindOverlapping = %v, want %v", got, reversed)
		}
	})
}
