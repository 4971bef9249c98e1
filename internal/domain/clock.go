package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidTimeFormat = errors.New("invalid time format")

// Largest hour or minute field ParseClock accepts; keeps h*60+m inside int32.
const maxClockField = math.MaxInt32 / 120

// ParseClock converts "HH:MM" into minutes since midnight.
func ParseClock(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q: expected HH:MM", ErrInvalidTimeFormat, s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: hours: %v", ErrInvalidTimeFormat, s, err)
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: minutes: %v", ErrInvalidTimeFormat, s, err)
	}

	if h > maxClockField || h < -maxClockField || m > maxClockField || m < -maxClockField {
		return 0, fmt.Errorf("%w: %q: value out of range", ErrInvalidTimeFormat, s)
	}

	return float64(h*60 + m), nil
}

// FormatClock renders minutes since midnight as HH:MM.
// Values past midnight are not wrapped, so 25:10 is a valid result.
func FormatClock(minutes float64) string {
	m := int(math.Round(math.Max(0, minutes)))
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// FormatDuration renders a minute count as "Xh Ym" for summaries.
// The total is rounded to the minute first, so 119.6 reads "2h 0m".
func FormatDuration(minutes float64) string {
	m := int(math.Round(math.Max(0, minutes)))
	return fmt.Sprintf("%dh %dm", m/60, m%60)
}
