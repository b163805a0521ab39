// Package itinerary implements the itinerary/map synchronization core:
// grouping dated entries into days, ordering within a day, the within-day
// reorder transaction, and the focus computations that drive the map view.
//
// Everything here is a pure function over domain values; persistence and
// view state live in the service layer.
package itinerary

import (
	"sort"

	"tripplan/internal/domain"
)

// Day is one rendered day group: the literal date string and its entries in
// display order.
type Day struct {
	Date    string         `json:"date"`
	Entries []domain.Entry `json:"entries"`
}

// SortDay orders a day's entries in place by plain string comparison of the
// time field, missing treated as empty. The sort is stable: entries with
// equal (or both empty) times keep the relative order they have in the
// underlying collection, so re-grouping never visibly reshuffles untimed
// entries. Note that "" compares less than any "HH:MM", so untimed entries
// sort first. See the package tests for the pinned ordering.
func SortDay(entries []domain.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})
}

// GroupByDate maps each literal date string to that day's entries in sorted
// order. Grouping is a pure projection: it never mutates the input slice and
// calling it twice on unchanged data yields identical structure and order.
func GroupByDate(list []domain.Entry) map[string][]domain.Entry {
	groups := make(map[string][]domain.Entry)
	for _, e := range list {
		groups[e.Date] = append(groups[e.Date], e)
	}
	for date := range groups {
		SortDay(groups[date])
	}
	return groups
}

// Dates returns the group keys in ascending lexicographic order, which is
// chronological order for ISO "YYYY-MM-DD" strings.
func Dates(groups map[string][]domain.Entry) []string {
	dates := make([]string, 0, len(groups))
	for d := range groups {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Days groups and orders the whole collection for rendering: day groups in
// date order, entries within each day in time order.
func Days(list []domain.Entry) []Day {
	groups := GroupByDate(list)
	days := make([]Day, 0, len(groups))
	for _, date := range Dates(groups) {
		days = append(days, Day{Date: date, Entries: groups[date]})
	}
	return days
}
