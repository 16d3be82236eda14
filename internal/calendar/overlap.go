package calendar

import "calendar-scheduler/internal/model"

// IsOverlapping reports whether the instant ranges of a and b intersect.
// Touching endpoints (a.End == b.Start) do not count as overlap, and a range
// with a malformed endpoint never overlaps anything.
func IsOverlapping(a, b model.Event) bool {
	ra, rb := EventRange(a), EventRange(b)
	if !ra.Valid() || !rb.Valid() {
		return false
	}
	return ra.Start.Before(rb.End) && rb.Start.Before(ra.End)
}

// FindOverlapping returns every event in pool whose range intersects the
// candidate's, preserving pool order. Pool entries sharing the candidate's ID
// are skipped, so an edited event never reports itself. It only detects;
// accepting or rejecting the conflicting save stays with the caller.
func FindOverlapping(candidate model.Event, pool []model.Event) []model.Event {
	overlapping := []model.Event{}
	for _, e := range pool {
		if e.ID == candidate.ID {
			continue
		}
		if IsOverlapping(candidate, e) {
			overlapping = append(overlapping, e)
		}
	}
	return overlapping
}
