package schedule

import (
	"errors"
	"time"
)

var (
	// ErrMissingAnchor is returned when schedule generation is attempted without
	// a departure date.
	ErrMissingAnchor = errors.New("missing anchor date: departure date is required")

	// ErrInvalidStatus is returned for a status value outside pending/completed/delayed.
	ErrInvalidStatus = errors.New("invalid milestone status")

	// ErrInvalidDate is returned when a date string cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
)

// DateLayout is the wire/storage format for calendar dates.
const DateLayout = "2006-01-02"

// TruncateDate drops the time-of-day component. All engine arithmetic runs on
// UTC-midnight dates so timezone offsets can never shift a day boundary.
func TruncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns a - b in whole calendar days.
func DaysBetween(a, b time.Time) int {
	return int(TruncateDate(a).Sub(TruncateDate(b)).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD string into a UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
