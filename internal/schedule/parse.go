package schedule

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrEmptySchedule is returned when parsing finishes with zero items.
var ErrEmptySchedule = errors.New("no schedule items found")

// FormatError describes a malformed time field in a schedule file.
type FormatError struct {
	Line   int
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: bad time %q: %s", e.Line, e.Field, e.Reason)
}

// Parse reads a line-oriented schedule. Blank lines and lines starting with
// '#' are skipped. Each remaining line is comma-split into trimmed fields:
// two fields make a single-instant item, three or more an interval (fields
// past the third are ignored). Lines with fewer fields are silently dropped.
// Item order is preserved exactly as written; nothing is sorted.
func Parse(r io.Reader) ([]Item, error) {
	var items []Item

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		switch {
		case len(parts) == 2:
			begin, err := parseField(parts[1], lineNum)
			if err != nil {
				return nil, err
			}
			items = append(items, Item{Title: parts[0], Begin: begin})

		case len(parts) >= 3:
			begin, err := parseField(parts[1], lineNum)
			if err != nil {
				return nil, err
			}
			end, err := parseField(parts[2], lineNum)
			if err != nil {
				return nil, err
			}
			items = append(items, Item{Title: parts[0], Begin: begin, End: &end})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrEmptySchedule
	}
	return items, nil
}

// Load reads and parses the schedule file at path.
func Load(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	items, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// ParseTimeOfDay parses a strict HH:MM field.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("want HH:MM")
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("hour is not a number")
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("minute is not a number")
	}

	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range", minute)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func parseField(field string, line int) (TimeOfDay, error) {
	t, err := ParseTimeOfDay(field)
	if err != nil {
		return TimeOfDay{}, &FormatError{Line: line, Field: field, Reason: err.Error()}
	}
	return t, nil
}
