package countdown

import (
	"fmt"
	"time"

	"github.com/avelis/countdowntab/internal/model"
)

// Result is the displayable countdown for one event or date group.
// IsHours marks the compact sub-day rendering ("3h 45m") that carries no label.
type Result struct {
	Value   string
	Label   string
	IsHours bool
}

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date in the given location.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout, date, loc)
}

// Target computes the effective deadline of an event: date+time for a timed
// event, end of day (23:59:59) for an all-day one. Times are local wall clock;
// there is no timezone-aware scheduling.
func Target(date string, tm *string, loc *time.Location) (time.Time, error) {
	d, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", date, err)
	}
	if tm == nil || *tm == "" {
		return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, loc), nil
	}
	t, err := time.ParseInLocation("15:04", *tm, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing time %q: %w", *tm, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

// EventTarget is Target applied to an event, in now's location.
func EventTarget(e model.Event, loc *time.Location) (time.Time, error) {
	return Target(e.Date, e.Time, loc)
}

// For computes the countdown from now to the given date/time. It is a pure
// function of its inputs; callers re-evaluate it on their refresh tick so
// displayed values do not go stale.
//
// Bucket priority: passed, then hours/minutes for timed events inside 24h,
// then Today / 1 Day / N Days. All-day events never use the hours bucket —
// their true deadline is ambiguous down to the minute, so they always report
// in day granularity even within the final 24 hours.
func For(date string, tm *string, now time.Time) Result {
	target, err := Target(date, tm, now.Location())
	if err != nil {
		// Unparseable stored data renders as passed rather than crashing a view.
		return Result{Value: "Passed"}
	}

	diff := target.Sub(now)
	if diff < 0 {
		return Result{Value: "Passed"}
	}

	timed := tm != nil && *tm != ""
	if diff < 24*time.Hour && timed {
		h := int(diff / time.Hour)
		m := int((diff % time.Hour) / time.Minute)
		return Result{Value: fmt.Sprintf("%dh %dm", h, m), IsHours: true}
	}

	days := int((diff + 24*time.Hour - 1) / (24 * time.Hour))
	switch days {
	case 0:
		return Result{Value: "Today"}
	case 1:
		return Result{Value: "1", Label: "Day"}
	default:
		return Result{Value: fmt.Sprintf("%d", days), Label: "Days"}
	}
}

// ForEvent is For applied to an event.
func ForEvent(e model.Event, now time.Time) Result {
	return For(e.Date, e.Time, now)
}

// ForDate computes the all-day countdown used by date-group headers; the
// individual member times are deliberately ignored.
func ForDate(date string, now time.Time) Result {
	return For(date, nil, now)
}

// Clock formats now as a 24-hour HH:MM wall clock.
func Clock(now time.Time) string {
	return now.Format("15:04")
}
