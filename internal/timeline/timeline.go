// Package timeline classifies a wall-clock instant against an ordered bell
// schedule and computes the countdown shown on the overlay.
package timeline

import (
	"fmt"
	"time"

	"chime/internal/schedule"
)

// Canonical titles for the synthetic states.
const (
	TitleTransitioning = "Transitioning"
	TitleEndOfSchool   = "End of School"
	TitleFallback      = "Schedule"
)

// State is what the overlay renders on a tick. Subtitle is set only while
// transitioning between items; Remaining is unset only in the fallback state.
type State struct {
	Title        string
	Subtitle     string
	Remaining    time.Duration
	HasSubtitle  bool
	HasRemaining bool
}

// Timer returns the formatted countdown, or "" when there is none.
func (s State) Timer() string {
	if !s.HasRemaining {
		return ""
	}
	return FormatDuration(s.Remaining)
}

// Compute scans the schedule in file order and returns the display state for
// now. It is a pure function: no caching, no hidden state. Boundaries are
// half-open [begin, end) — at begin an item is in progress, at end it is over.
func Compute(items []schedule.Item, now time.Time) State {
	if len(items) == 0 {
		return State{Title: TitleFallback}
	}

	for i, item := range items {
		begin := item.Begin.On(now)

		if now.Before(begin) {
			return State{
				Title:        item.Title,
				Remaining:    begin.Sub(now),
				HasRemaining: true,
			}
		}

		if item.End != nil {
			end := item.End.On(now)
			if now.Before(end) {
				return State{
					Title:        item.Title,
					Remaining:    end.Sub(now),
					HasRemaining: true,
				}
			}
		}

		// The item has fully elapsed. If now sits in the gap before the
		// next item begins, report the transition window.
		if i+1 < len(items) {
			last := item.Last().On(now)
			nextBegin := items[i+1].Begin.On(now)
			if !now.Before(last) && now.Before(nextBegin) {
				return State{
					Title:        TitleTransitioning,
					Subtitle:     fmt.Sprintf("%s → %s", item.Title, items[i+1].Title),
					Remaining:    nextBegin.Sub(now),
					HasSubtitle:  true,
					HasRemaining: true,
				}
			}
		}
	}

	last := items[len(items)-1].Last().On(now)
	if !now.Before(last) {
		return State{
			Title:        TitleEndOfSchool,
			Remaining:    now.Sub(last),
			HasRemaining: true,
		}
	}

	// Unreachable for a well-ordered schedule.
	return State{Title: TitleFallback}
}

// FormatDuration renders d as H:MM:SS with unpadded hours. Negative durations
// clamp to zero so a boundary race never shows a negative countdown.
func FormatDuration(d time.Duration) string {
	total := int(d / time.Second)
	if total < 0 {
		total = 0
	}

	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
