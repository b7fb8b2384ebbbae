// Package filter is the single filtering pass behind every list view: tab
// selection, free-text search and date range, applied in order over one
// stable sweep.
package filter

import (
	"log"
	"strings"
	"time"

	"tableflip.dev/pumpdesk/pkg/datefilter"
)

// Item is what the pipeline needs to know about a work item.
type Item interface {
	StatusLabel() string
	SearchText() string
	FilterDay() (time.Time, error)
}

// Config selects the visible subset of a collection.
type Config struct {
	// Tab keeps items whose status matches; empty or "all" keeps everything.
	Tab string
	// Query is a case-insensitive substring match over SearchText.
	Query string
	// Dates restricts items to the selected calendar range.
	Dates datefilter.Range
}

// Apply filters items against cfg relative to the current moment.
func Apply[T Item](items []T, cfg Config) []T {
	return ApplyAt(items, cfg, time.Now(), nil)
}

// ApplyAt is Apply with an explicit clock and warning sink. Items whose date
// fails to parse are dropped from date-restricted views and reported through
// logf; they never abort the pass.
func ApplyAt[T Item](items []T, cfg Config, now time.Time, logf func(format string, args ...interface{})) []T {
	if logf == nil {
		logf = log.Printf
	}
	query := strings.ToLower(strings.TrimSpace(cfg.Query))
	dated := cfg.Dates.Mode != "" && cfg.Dates.Mode != datefilter.All

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !tabMatches(cfg.Tab, item.StatusLabel()) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.SearchText()), query) {
			continue
		}
		if dated {
			day, err := item.FilterDay()
			if err != nil {
				logf("filter: %v", err)
				continue
			}
			if !cfg.Dates.Contains(day, now) {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

func tabMatches(tab, status string) bool {
	if tab == "" || strings.EqualFold(tab, "all") {
		return true
	}
	return strings.EqualFold(tab, status)
}
