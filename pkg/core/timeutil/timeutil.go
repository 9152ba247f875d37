// Package timeutil holds the clock and weekday helpers shared by the
// availability matcher and the template projector. Times of day are plain
// "HH:MM" strings throughout the data model; this package is where they get
// turned into something comparable.
package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidClock is returned when a time-of-day string is not a valid
// 24-hour "HH:MM" value.
var ErrInvalidClock = errors.New("invalid HH:MM time of day")

// ToMinutes parses a 24-hour "HH:MM" string and returns minutes since
// midnight (0..1439). Malformed input returns an error wrapping
// ErrInvalidClock rather than a silently wrong value.
func ToMinutes(clock string) (int, error) {
	hourStr, minuteStr, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}

	return hour*60 + minute, nil
}

// DayOfWeek returns the weekday of t with Sunday = 0 through Saturday = 6,
// the convention used by availability windows and template shifts.
func DayOfWeek(t time.Time) int {
	return int(t.Weekday())
}

// At combines a calendar date with a "HH:MM" time of day, producing a
// timestamp on the same day in the date's location.
func At(date time.Time, clock string) (time.Time, error) {
	minutes, err := ToMinutes(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location()), nil
}

// NextMonday returns the Monday of the week after the given date, normalized
// to the start of day. This is the default anchor offered to callers of the
// template projector, which itself does no week anchoring.
func NextMonday(from time.Time) time.Time {
	normalized := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())

	daysUntilMonday := (int(time.Monday) - int(normalized.Weekday()) + 7) % 7
	if daysUntilMonday == 0 {
		daysUntilMonday = 7
	}

	return normalized.AddDate(0, 0, daysUntilMonday)
}
