package model

import (
	"regexp"
	"strings"
	"time"
)

// Event is a single countdown entry. A nil Time means the event is all-day;
// its effective deadline is the end of Date in local time.
type Event struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Date string  `json:"date"`
	Time *string `json:"time"`
}

// StoredTimePattern is the canonical form a persisted time must match.
var StoredTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// NewID derives an event ID from the current wall clock, millisecond
// resolution. Two inserts within the same millisecond would collide; that is an
// accepted limitation for a human-paced tool, and id order doubles as insertion
// order for same-instant sort ties, so it is deliberately not replaced with a
// random generator.
func NewID(now time.Time) int64 {
	return now.UnixMilli()
}

// AllDay reports whether the event has no specific time.
func (e Event) AllDay() bool {
	return e.Time == nil || *e.Time == ""
}

// IsLegacy reports whether the event still uses the old combined
// "YYYY-MM-DDTHH:MM" date field.
func (e Event) IsLegacy() bool {
	return strings.Contains(e.Date, "T")
}

// SplitLegacy converts a legacy combined-datetime event into the current
// {date, time} shape. Applying it to an already-split event is a no-op, so the
// migration that calls it may safely run more than once.
func (e Event) SplitLegacy() Event {
	if !e.IsLegacy() {
		return e
	}
	parts := strings.SplitN(e.Date, "T", 2)
	out := Event{ID: e.ID, Name: e.Name, Date: parts[0]}
	if len(parts) == 2 && parts[1] != "" {
		t := parts[1]
		out.Time = &t
	}
	return out
}
