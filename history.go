package fortress

import (
	"regexp"
	"slices"
)

const (
	// DefaultPageSize is the number of date groups shown at first.
	DefaultPageSize = 5
	// PageStep is the number of groups added by each "load more".
	PageStep = 5
)

// ratioAnnotation matches the " (50%)" parts of a summary.
var ratioAnnotation = regexp.MustCompile(`\s\(\d+%\)`)

// Row is an entry as shown in the history view.
type Row struct {
	Entry
	Index        int    // position of the entry in the stored ledger
	CleanSummary string // summary without ratio annotations
}

// Group gathers the rows sharing the same display date.
type Group struct {
	Date string
	Rows []Row
}

// GroupHistory returns the history from most recent to oldest, grouped by
// display date.
//
// Groups are keyed by the literal display date, so two entries with
// different ISO dates but the same display date share a group. Each row
// keeps the position of its entry in s.History.
func GroupHistory(s *State) []Group {
	order := make([]int, len(s.History))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int { return byDateDesc(s.History[i], s.History[j]) })

	var groups []Group
	index := make(map[string]int)
	for _, i := range order {
		e := s.History[i]
		g, ok := index[e.Date]
		if !ok {
			g = len(groups)
			index[e.Date] = g
			groups = append(groups, Group{Date: e.Date})
		}
		groups[g].Rows = append(groups[g].Rows, Row{
			Entry:        e.Clone(),
			Index:        i,
			CleanSummary: ratioAnnotation.ReplaceAllString(e.Summary, ""),
		})
	}
	return groups
}

// Page is the visible part of the grouped history.
type Page struct {
	Groups  []Group
	HasMore bool
}

// Paginate returns the first limit groups.
func Paginate(groups []Group, limit int) Page {
	if limit < 0 {
		limit = 0
	}
	if limit >= len(groups) {
		return Page{Groups: groups}
	}
	return Page{Groups: groups[:limit], HasMore: true}
}
