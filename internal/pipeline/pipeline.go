// Package pipeline turns the stored event collection into the paged, grouped
// sequence the surfaces render: chronological sort, fixed-size pages, and
// page-local same-day grouping.
package pipeline

import (
	"sort"
	"time"

	"github.com/avelis/countdowntab/internal/countdown"
	"github.com/avelis/countdowntab/internal/model"
)

// Page is one fixed-size slice of the sorted collection.
type Page struct {
	Events []model.Event
}

// Paged is the result of splitting the sorted collection into pages.
type Paged struct {
	Pages      []Page
	TotalPages int
}

// DateGroup collects the events of one page that share an exact date string.
type DateGroup struct {
	Date   string
	Events []model.Event
}

// Sort orders events ascending by target instant: timed events at date+time,
// all-day events at end of day. The sort is stable so same-instant events keep
// their insertion order, which follows id assignment order.
func Sort(events []model.Event, loc *time.Location) {
	sort.SliceStable(events, func(i, j int) bool {
		ti, erri := countdown.EventTarget(events[i], loc)
		tj, errj := countdown.EventTarget(events[j], loc)
		// Unparseable dates sort last so good data stays visible up front.
		if erri != nil || errj != nil {
			return errj != nil && erri == nil
		}
		return ti.Before(tj)
	})
}

// Paginate splits events into fixed-size pages. An empty collection still has
// one (empty) page so page numbering always starts at 1.
func Paginate(events []model.Event, pageSize int) Paged {
	if pageSize <= 0 {
		pageSize = 1
	}
	total := (len(events) + pageSize - 1) / pageSize
	if total < 1 {
		total = 1
	}
	p := Paged{TotalPages: total}
	for i := 0; i < total; i++ {
		start := i * pageSize
		end := start + pageSize
		if end > len(events) {
			end = len(events)
		}
		p.Pages = append(p.Pages, Page{Events: events[start:end]})
	}
	return p
}

// Clamp pulls an out-of-range current page back into [1, totalPages], e.g.
// after the last event on the last page was deleted.
func Clamp(page, totalPages int) int {
	if page > totalPages {
		return totalPages
	}
	if page < 1 {
		return 1
	}
	return page
}

// CanNavigate reports whether a page change request is actionable: the target
// must be inside [1, totalPages] and different from the current page. Invalid
// requests are no-ops at the caller.
func CanNavigate(current, target, totalPages int) bool {
	return target != current && target >= 1 && target <= totalPages
}

// GroupByDate partitions one page's events by exact date-string equality,
// preserving first-seen date order. Grouping is page-local: events sharing a
// date but split across pages never merge.
func GroupByDate(pageEvents []model.Event) []DateGroup {
	var groups []DateGroup
	index := make(map[string]int)
	for _, e := range pageEvents {
		i, ok := index[e.Date]
		if !ok {
			i = len(groups)
			index[e.Date] = i
			groups = append(groups, DateGroup{Date: e.Date})
		}
		groups[i].Events = append(groups[i].Events, e)
	}
	return groups
}
