// Package timerange parses free-text booking time ranges ("9:00 AM - 11:30 AM")
// and enforces the studio's business-hours policy. Fixed slot labels never pass
// through here; they are pre-validated by the caller.
package timerange

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Business hours are a fixed constant of the design: sessions must start at or
// after 07:00 and end at or before 21:00.
const (
	OpenHour  = 7.0
	CloseHour = 21.0
)

var ErrBadFormat = errors.New("bad format")

// PolicyError reports a parseable range that falls outside business hours.
type PolicyError struct {
	Reason string
}

func (e *PolicyError) Error() string {
	return e.Reason
}

// A time token is hour:minute with an optional AM/PM marker. A bare hour with
// a marker ("2 PM") also counts; a bare number without either does not.
var tokenRegex = regexp.MustCompile(`(?i)(\d{1,2})(?::([0-5]\d))?\s*(am|pm)?`)

// Range holds the parsed bounds on a 24-hour fractional-hour scale
// (2:30 PM -> 14.5).
type Range struct {
	Start float64
	End   float64
}

// Parse extracts every time token from text and returns the range spanning
// them: Start is the earliest parsed time, End the latest. At least one token
// must be parseable or ErrBadFormat is returned.
func Parse(text string) (Range, error) {
	var times []float64
	for _, m := range tokenRegex.FindAllStringSubmatch(text, -1) {
		hourPart, minutePart, meridiem := m[1], m[2], m[3]
		if minutePart == "" && meridiem == "" {
			continue
		}

		hour, err := strconv.Atoi(hourPart)
		if err != nil || hour > 23 {
			continue
		}

		minutes := 0
		if minutePart != "" {
			minutes, _ = strconv.Atoi(minutePart)
		}

		switch {
		case strings.EqualFold(meridiem, "am") && hour == 12:
			hour = 0
		case strings.EqualFold(meridiem, "pm") && hour < 12:
			hour += 12
		}

		times = append(times, float64(hour)+float64(minutes)/60)
	}

	if len(times) == 0 {
		return Range{}, ErrBadFormat
	}

	r := Range{Start: times[0], End: times[0]}
	for _, t := range times[1:] {
		if t < r.Start {
			r.Start = t
		}
		if t > r.End {
			r.End = t
		}
	}
	return r, nil
}

// Validate parses text and applies the business-hours policy. It returns
// ErrBadFormat when no time token parses, a *PolicyError when the range falls
// outside opening hours, and nil otherwise.
func Validate(text string) error {
	r, err := Parse(text)
	if err != nil {
		return err
	}

	if r.Start < OpenHour {
		return &PolicyError{
			Reason: fmt.Sprintf("booking starts before opening time (%s)", formatHour(OpenHour)),
		}
	}
	if r.End > CloseHour {
		return &PolicyError{
			Reason: fmt.Sprintf("booking ends after closing time (%s)", formatHour(CloseHour)),
		}
	}
	return nil
}

func formatHour(h float64) string {
	hours := int(h)
	minutes := int((h - float64(hours)) * 60)
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
