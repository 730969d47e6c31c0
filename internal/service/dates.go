package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	apperrors "jobtracker/internal/errors"
)

var calendarDatePrefix = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)

// Layouts tried when the input does not start with YYYY-MM-DD.
var fallbackDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	"Mon Jan 2 2006 15:04:05 GMT-0700",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"01/02/2006",
	"2006/01/02",
}

// ParseDate turns raw into an instant.
//
// Input starting with YYYY-MM-DD maps to UTC midnight of that calendar day,
// whatever follows (times and offsets are ignored) so the stored day never
// shifts with the server timezone. Anything else goes through the fallback
// layouts. Failures are reported as a validation error on field.
func ParseDate(field, raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, apperrors.NewValidationError(field, "is required")
	}

	if m := calendarDatePrefix.FindStringSubmatch(value); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if t.Year() != year || int(t.Month()) != month || t.Day() != day {
			return time.Time{}, apperrors.NewValidationError(field, "invalid date %q", raw)
		}
		return t, nil
	}

	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperrors.NewValidationError(field, "invalid date %q", raw)
}
