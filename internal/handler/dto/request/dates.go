package request

import (
	"time"

	"hosteed/internal/pkg/errs"
)

const DateLayout = time.DateOnly

var ErrInvalidDate = errs.New("dates must use the YYYY-MM-DD format")

// ParseDate reads a calendar day as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, errs.Validation(ErrInvalidDate)
	}
	return t, nil
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	s, err := ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return s, e, nil
}
