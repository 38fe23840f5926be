package daterange

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidRange = errors.New("daterange: end date must be after start date")
)

// DateRange is the half-open interval [Start, End) of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func New(start, end time.Time) (DateRange, error) {
	dr := DateRange{Start: start.UTC(), End: end.UTC()}
	if err := dr.Validate(); err != nil {
		return DateRange{}, err
	}
	return dr, nil
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (dr DateRange) Validate() error {
	if dr.End.IsZero() || dr.Start.IsZero() {
		return ErrInvalidRange
	}
	if !dr.End.After(dr.Start) {
		return ErrInvalidRange
	}
	return nil
}

// Nights rounds partial days up.
func (dr DateRange) Nights() int {
	return int(math.Ceil(dr.End.Sub(dr.Start).Hours() / 24))
}

// Overlaps is false when one range ends exactly where the other starts.
func (dr DateRange) Overlaps(other DateRange) bool {
	return dr.Start.Before(other.End) && other.Start.Before(dr.End)
}

func (dr DateRange) ContainsDate(t time.Time) bool {
	t = t.UTC()
	return (t.Equal(dr.Start) || t.After(dr.Start)) && t.Before(dr.End)
}

func (dr DateRange) Adjacent(other DateRange) bool {
	return dr.End.Equal(other.Start) || dr.Start.Equal(other.End)
}

// Dates lists the start day of each night in the range.
func (dr DateRange) Dates() []time.Time {
	start := Day(dr.Start)
	out := make([]time.Time, 0, dr.Nights())
	for d := start; d.Before(dr.End); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}
