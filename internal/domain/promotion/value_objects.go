package promotion

import (
	"errors"
	"time"

	"hosteed/internal/domain/shared/daterange"
	"hosteed/internal/domain/shared/money"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDiscount = errors.New("discount percentage must be greater than 0 and at most 100")
	ErrInvalidPeriod   = errors.New("promotion end date must be after start date")
)

// Discount is a percentage in (0, 100].
type Discount struct {
	percentage decimal.Decimal
}

func NewDiscount(percentage decimal.Decimal) (Discount, error) {
	if !percentage.IsPositive() || percentage.GreaterThan(decimal.NewFromInt(100)) {
		return Discount{}, ErrInvalidDiscount
	}
	return Discount{percentage: percentage}, nil
}

func (d Discount) Percentage() decimal.Decimal {
	return d.percentage
}

// Factor is the share of the price left to pay, 0.9 for a 10% discount.
func (d Discount) Factor() decimal.Decimal {
	return money.PercentFactor(d.percentage)
}

func (d Discount) ApplyTo(price decimal.Decimal) decimal.Decimal {
	return price.Mul(d.Factor())
}

// Period is the closed range [Start, End] of calendar days a promotion covers.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	start, end = daterange.Day(start), daterange.Day(end)
	if !end.After(start) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

// Overlaps treats both ends as inclusive, so periods sharing a day overlap.
func (p Period) Overlaps(other Period) bool {
	return !p.start.After(other.end) && !other.start.After(p.end)
}

func (p Period) Contains(date time.Time) bool {
	date = daterange.Day(date)
	return !date.Before(p.start) && !date.After(p.end)
}
