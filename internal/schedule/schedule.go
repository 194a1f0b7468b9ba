package schedule

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time with minute resolution, independent of date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// On combines the time of day with the calendar date of day.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Item is one entry of a bell schedule: either a named interval (End set)
// or a single instant such as a bell (End nil).
type Item struct {
	Title string
	Begin TimeOfDay
	End   *TimeOfDay
}

// Last returns the item's last moment: End for intervals, Begin for instants.
func (it Item) Last() TimeOfDay {
	if it.End != nil {
		return *it.End
	}
	return it.Begin
}

// IsInstant reports whether the item is a single moment rather than an interval.
func (it Item) IsInstant() bool {
	return it.End == nil
}
