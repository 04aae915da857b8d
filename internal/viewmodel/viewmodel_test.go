package viewmodel_test

import (
	"testing"
	"time"

	"github.com/avelis/countdowntab/internal/model"
	"github.com/avelis/countdowntab/internal/pipeline"
	"github.com/avelis/countdowntab/internal/viewmodel"
)

func strptr(s string) *string { return &s }

func TestBuildEvent(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	timed := viewmodel.BuildEvent(model.Event{
		ID: 7, Name: "Demo", Date: "2025-06-02", Time: strptr("14:30"),
	}, now)
	if timed.DisplayDate != "Mon, Jun 2" {
		t.Errorf("DisplayDate = %q, want %q", timed.DisplayDate, "Mon, Jun 2")
	}
	if timed.DisplayWhen != "14:30" {
		t.Errorf("DisplayWhen = %q, want %q", timed.DisplayWhen, "14:30")
	}
	// 28.5 hours out: past the hours bucket, ceil lands on 2 days.
	if timed.CountdownValue != "2" || timed.CountdownLabel != "Days" {
		t.Errorf("countdown = %q %q, want 2 Days", timed.CountdownValue, timed.CountdownLabel)
	}

	allDay := viewmodel.BuildEvent(model.Event{ID: 8, Name: "Trip", Date: "2025-06-02"}, now)
	if allDay.DisplayWhen != "All Day" {
		t.Errorf("DisplayWhen = %q, want All Day", allDay.DisplayWhen)
	}
}

func TestBuildEventHoursBucket(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	ev := viewmodel.BuildEvent(model.Event{ID: 1, Name: "Soon", Date: "2025-06-01", Time: strptr("12:00")}, now)
	if !ev.IsHours || ev.CountdownValue != "2h 0m" {
		t.Errorf("view = %+v, want 2h 0m hours bucket", ev)
	}
}

// The group header countdown treats the date as all-day and ignores member
// times, even when every member is timed.
func TestBuildGroupHeaderIgnoresMemberTimes(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	g := pipeline.DateGroup{
		Date: "2025-06-01",
		Events: []model.Event{
			{ID: 1, Name: "a", Date: "2025-06-01", Time: strptr("11:00")},
			{ID: 2, Name: "b", Date: "2025-06-01", Time: strptr("12:00")},
		},
	}

	gv := viewmodel.BuildGroup(g, now)
	if gv.CountdownValue != "1" || gv.CountdownLabel != "Day" {
		t.Errorf("header countdown = %q %q, want all-day 1 Day", gv.CountdownValue, gv.CountdownLabel)
	}
	if gv.Count != 2 || gv.CountLabel != "2 events" {
		t.Errorf("count = %d %q", gv.Count, gv.CountLabel)
	}
	if len(gv.Entries) != 2 || !gv.Entries[0].IsHours {
		t.Errorf("entries keep their own countdowns: %+v", gv.Entries)
	}
}

func TestBuildPageClampsPage(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	var events []model.Event
	for i := 0; i < 3; i++ {
		events = append(events, model.Event{ID: int64(i), Name: "e", Date: "2025-06-05"})
	}
	paged := pipeline.Paginate(events, 8)

	pv := viewmodel.BuildPage(paged, 5, now)
	if pv.Page != 1 || pv.TotalPages != 1 {
		t.Errorf("page = %d/%d, want 1/1", pv.Page, pv.TotalPages)
	}
	if len(pv.Groups) != 1 || pv.Groups[0].Count != 3 {
		t.Errorf("groups = %+v", pv.Groups)
	}
}

func TestBuildEventBadDateFallsBack(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	ev := viewmodel.BuildEvent(model.Event{ID: 1, Name: "x", Date: "junk"}, now)
	if ev.DisplayDate != "junk" {
		t.Errorf("DisplayDate = %q, want raw value on parse failure", ev.DisplayDate)
	}
	if ev.CountdownValue != "Passed" {
		t.Errorf("CountdownValue = %q, want Passed", ev.CountdownValue)
	}
}
