package timeline

import (
	"testing"
	"time"

	"chime/internal/schedule"
)

func at(hour, minute, second int) time.Time {
	return time.Date(2025, 9, 1, hour, minute, second, 0, time.Local)
}

func interval(title string, b, e schedule.TimeOfDay) schedule.Item {
	return schedule.Item{Title: title, Begin: b, End: &e}
}

func instant(title string, b schedule.TimeOfDay) schedule.Item {
	return schedule.Item{Title: title, Begin: b}
}

// twoPeriods is the canonical example schedule: two intervals with a
// five-minute passing gap.
func twoPeriods() []schedule.Item {
	return []schedule.Item{
		interval("Period 1", schedule.TimeOfDay{Hour: 8, Minute: 0}, schedule.TimeOfDay{Hour: 8, Minute: 50}),
		interval("Period 2", schedule.TimeOfDay{Hour: 8, Minute: 55}, schedule.TimeOfDay{Hour: 9, Minute: 45}),
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name          string
		items         []schedule.Item
		now           time.Time
		wantTitle     string
		wantSubtitle  string
		wantRemaining string
	}{
		{
			name:      "Empty schedule falls back to the plain title",
			items:     nil,
			now:       at(8, 0, 0),
			wantTitle: TitleFallback,
		},
		{
			name:          "Before first item",
			items:         twoPeriods(),
			now:           at(7, 10, 0),
			wantTitle:     "Period 1",
			wantRemaining: "0:50:00",
		},
		{
			name:          "At exact begin the item is in progress",
			items:         twoPeriods(),
			now:           at(8, 0, 0),
			wantTitle:     "Period 1",
			wantRemaining: "0:50:00",
		},
		{
			name:          "Mid period",
			items:         twoPeriods(),
			now:           at(8, 20, 0),
			wantTitle:     "Period 1",
			wantRemaining: "0:30:00",
		},
		{
			name:          "At exact end the transition starts",
			items:         twoPeriods(),
			now:           at(8, 50, 0),
			wantTitle:     TitleTransitioning,
			wantSubtitle:  "Period 1 → Period 2",
			wantRemaining: "0:05:00",
		},
		{
			name:          "Inside the passing gap",
			items:         twoPeriods(),
			now:           at(8, 52, 0),
			wantTitle:     TitleTransitioning,
			wantSubtitle:  "Period 1 → Period 2",
			wantRemaining: "0:03:00",
		},
		{
			name:          "Transition ends exactly at next begin",
			items:         twoPeriods(),
			now:           at(8, 55, 0),
			wantTitle:     "Period 2",
			wantRemaining: "0:50:00",
		},
		{
			name:          "After the last item",
			items:         twoPeriods(),
			now:           at(9, 50, 0),
			wantTitle:     TitleEndOfSchool,
			wantRemaining: "0:05:00",
		},
		{
			name:          "At the exact last moment",
			items:         twoPeriods(),
			now:           at(9, 45, 0),
			wantTitle:     TitleEndOfSchool,
			wantRemaining: "0:00:00",
		},
		{
			name: "Single-instant bell counts down to itself",
			items: []schedule.Item{
				instant("First Bell", schedule.TimeOfDay{Hour: 7, Minute: 55}),
				interval("Period 1", schedule.TimeOfDay{Hour: 8, Minute: 0}, schedule.TimeOfDay{Hour: 8, Minute: 50}),
			},
			now:           at(7, 50, 0),
			wantTitle:     "First Bell",
			wantRemaining: "0:05:00",
		},
		{
			name: "Single-instant bell transitions immediately after",
			items: []schedule.Item{
				instant("First Bell", schedule.TimeOfDay{Hour: 7, Minute: 55}),
				interval("Period 1", schedule.TimeOfDay{Hour: 8, Minute: 0}, schedule.TimeOfDay{Hour: 8, Minute: 50}),
			},
			now:           at(7, 57, 0),
			wantTitle:     TitleTransitioning,
			wantSubtitle:  "First Bell → Period 1",
			wantRemaining: "0:03:00",
		},
		{
			name: "Back-to-back items have a zero-width transition",
			items: []schedule.Item{
				interval("Period 1", schedule.TimeOfDay{Hour: 8, Minute: 0}, schedule.TimeOfDay{Hour: 8, Minute: 50}),
				interval("Period 2", schedule.TimeOfDay{Hour: 8, Minute: 50}, schedule.TimeOfDay{Hour: 9, Minute: 40}),
			},
			now:           at(8, 50, 0),
			wantTitle:     "Period 2",
			wantRemaining: "0:50:00",
		},
		{
			name: "Trailing bell after the last period",
			items: []schedule.Item{
				interval("Period 1", schedule.TimeOfDay{Hour: 8, Minute: 0}, schedule.TimeOfDay{Hour: 8, Minute: 50}),
				instant("Dismissal", schedule.TimeOfDay{Hour: 8, Minute: 55}),
			},
			now:           at(8, 52, 0),
			wantTitle:     TitleTransitioning,
			wantSubtitle:  "Period 1 → Dismissal",
			wantRemaining: "0:03:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.items, tt.now)

			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}

			if tt.wantSubtitle == "" {
				if got.HasSubtitle {
					t.Errorf("unexpected subtitle %q", got.Subtitle)
				}
			} else {
				if !got.HasSubtitle {
					t.Fatalf("expected subtitle %q, got none", tt.wantSubtitle)
				}
				if got.Subtitle != tt.wantSubtitle {
					t.Errorf("Subtitle = %q, want %q", got.Subtitle, tt.wantSubtitle)
				}
			}

			if tt.wantRemaining == "" {
				if got.HasRemaining {
					t.Errorf("unexpected remaining %v", got.Remaining)
				}
			} else {
				if !got.HasRemaining {
					t.Fatalf("expected remaining %s, got none", tt.wantRemaining)
				}
				if got.Timer() != tt.wantRemaining {
					t.Errorf("Timer() = %q, want %q", got.Timer(), tt.wantRemaining)
				}
			}
		})
	}
}

func TestComputeElapsedGrows(t *testing.T) {
	items := twoPeriods()

	prev := Compute(items, at(10, 0, 0))
	next := Compute(items, at(10, 0, 30))

	if prev.Title != TitleEndOfSchool || next.Title != TitleEndOfSchool {
		t.Fatalf("expected %q after the last item", TitleEndOfSchool)
	}
	if next.Remaining <= prev.Remaining {
		t.Errorf("elapsed time should grow: %v then %v", prev.Remaining, next.Remaining)
	}
	if prev.Remaining < 0 || next.Remaining < 0 {
		t.Errorf("elapsed time must never be negative")
	}
}

func TestComputeIsPure(t *testing.T) {
	items := twoPeriods()
	now := at(8, 52, 30)

	first := Compute(items, now)
	second := Compute(items, now)

	if first != second {
		t.Errorf("Compute is not idempotent: %+v vs %+v", first, second)
	}
}

func TestComputeSkipsElapsedItemsWithoutWindow(t *testing.T) {
	// When items are non-contiguous, an elapsed item whose transition
	// window has passed is skipped and the scan continues.
	items := []schedule.Item{
		interval("Period 1", schedule.TimeOfDay{Hour: 8, Minute: 0}, schedule.TimeOfDay{Hour: 8, Minute: 50}),
		interval("Period 2", schedule.TimeOfDay{Hour: 9, Minute: 0}, schedule.TimeOfDay{Hour: 9, Minute: 50}),
		interval("Period 3", schedule.TimeOfDay{Hour: 10, Minute: 0}, schedule.TimeOfDay{Hour: 10, Minute: 50}),
	}

	got := Compute(items, at(9, 55, 0))
	if got.Title != TitleTransitioning {
		t.Fatalf("Title = %q, want %q", got.Title, TitleTransitioning)
	}
	if got.Subtitle != "Period 2 → Period 3" {
		t.Errorf("Subtitle = %q, want %q", got.Subtitle, "Period 2 → Period 3")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "Zero", d: 0, want: "0:00:00"},
		{name: "Seconds only", d: 42 * time.Second, want: "0:00:42"},
		{name: "Minutes", d: 3*time.Minute + 7*time.Second, want: "0:03:07"},
		{name: "Hours unpadded", d: 2*time.Hour + 5*time.Minute, want: "2:05:00"},
		{name: "Many hours", d: 26*time.Hour + 9*time.Second, want: "26:00:09"},
		{name: "Negative clamps to zero", d: -90 * time.Second, want: "0:00:00"},
		{name: "Sub-second truncates", d: 900 * time.Millisecond, want: "0:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.d); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
