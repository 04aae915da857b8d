// Package viewmodel projects pipeline output into the display strings a
// renderer consumes. It is a pure projection: no side effects, no persisted
// state.
package viewmodel

import (
	"fmt"
	"time"

	"github.com/avelis/countdowntab/internal/countdown"
	"github.com/avelis/countdowntab/internal/model"
	"github.com/avelis/countdowntab/internal/pipeline"
)

// EventView is the renderable form of one event.
type EventView struct {
	ID             int64
	Name           string
	DisplayDate    string // "Mon, Jun 2"
	DisplayWhen    string // "14:30" or "All Day"
	CountdownValue string
	CountdownLabel string
	IsHours        bool
}

// GroupView is the renderable form of one date group. Entries holds the
// member event views; a renderer shows single-member groups as plain entries
// and larger ones as a collapsible group. The header countdown treats the
// date as all-day regardless of member times.
type GroupView struct {
	Date           string
	DisplayDate    string
	Count          int
	CountLabel     string // "3 events"
	CountdownValue string
	CountdownLabel string
	Entries        []EventView
}

// PageView is everything a renderer needs for one page.
type PageView struct {
	Page       int
	TotalPages int
	Groups     []GroupView
}

// displayDate renders a YYYY-MM-DD date as short weekday, month, and day.
func displayDate(date string, loc *time.Location) string {
	d, err := countdown.ParseDate(date, loc)
	if err != nil {
		return date
	}
	return d.Format("Mon, Jan 2")
}

// BuildEvent assembles the view of a single event at the given instant.
func BuildEvent(e model.Event, now time.Time) EventView {
	cd := countdown.ForEvent(e, now)
	when := "All Day"
	if !e.AllDay() {
		when = *e.Time
	}
	return EventView{
		ID:             e.ID,
		Name:           e.Name,
		DisplayDate:    displayDate(e.Date, now.Location()),
		DisplayWhen:    when,
		CountdownValue: cd.Value,
		CountdownLabel: cd.Label,
		IsHours:        cd.IsHours,
	}
}

// BuildGroup assembles the view of one date group.
func BuildGroup(g pipeline.DateGroup, now time.Time) GroupView {
	cd := countdown.ForDate(g.Date, now)
	gv := GroupView{
		Date:           g.Date,
		DisplayDate:    displayDate(g.Date, now.Location()),
		Count:          len(g.Events),
		CountLabel:     fmt.Sprintf("%d events", len(g.Events)),
		CountdownValue: cd.Value,
		CountdownLabel: cd.Label,
	}
	for _, e := range g.Events {
		gv.Entries = append(gv.Entries, BuildEvent(e, now))
	}
	return gv
}

// BuildPage runs the whole derivation for one page of the sorted collection:
// page-local grouping followed by per-group and per-event projection.
func BuildPage(paged pipeline.Paged, page int, now time.Time) PageView {
	page = pipeline.Clamp(page, paged.TotalPages)
	pv := PageView{Page: page, TotalPages: paged.TotalPages}
	for _, g := range pipeline.GroupByDate(paged.Pages[page-1].Events) {
		pv.Groups = append(pv.Groups, BuildGroup(g, now))
	}
	return pv
}
