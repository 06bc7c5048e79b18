package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedTime is returned for time strings that cannot be parsed.
// A malformed value is never coerced to midnight.
var ErrMalformedTime = errors.New("types: malformed time string")

const minutesPerDay = 24 * 60

// TimeString represents a time of day in canonical "HH:MM" form.
// It carries no date, so it is the right shape for slot labels and
// booking start times. All comparisons go through minute-of-day
// integers, never string comparison.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString parses a staff-entered time string into a
// canonical TimeString. Accepted forms: "18:30", "6:30" (24-hour),
// "6:30 PM", "06:30pm" (optional case-insensitive AM/PM marker, with
// or without a separating space).
//
// AM/PM normalization: 12 AM -> 00, 12 PM -> 12, other PM hours +12.
// Without a marker the hour is taken literally in the 0..23 range.
func NewTimeStringFromString(s string) (TimeString, error) {
	hour, minute, err := parseClock(s)
	if err != nil {
		return "", err
	}
	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

func parseClock(s string) (hour, minute int, err error) {
	raw := strings.TrimSpace(s)

	meridiem := ""
	upper := strings.ToUpper(raw)
	if strings.HasSuffix(upper, "AM") || strings.HasSuffix(upper, "PM") {
		meridiem = upper[len(upper)-2:]
		raw = strings.TrimSpace(raw[:len(raw)-2])
	}

	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	hour, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	if minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	switch meridiem {
	case "":
		if hour < 0 || hour > 23 {
			return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
		}
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
		}
		if hour != 12 {
			hour += 12
		}
	}

	return hour, minute, nil
}

// String returns the canonical "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the minute-of-day value (hour*60 + minute).
// This is the only form used in comparisons.
func (t TimeString) Minutes() (int, error) {
	hour, minute, err := parseClock(string(t))
	if err != nil {
		return 0, err
	}
	return hour*60 + minute, nil
}

// AddMinutes returns the time m minutes later, wrapping at midnight.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total = ((total+m)%minutesPerDay + minutesPerDay) % minutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Malformed values compare as false; callers that need to distinguish
// malformed input should use Minutes directly.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a > b
}
