package pricing

import (
	"errors"

	"hosteed/internal/domain/extra"
	"hosteed/internal/domain/shared/daterange"
	"hosteed/internal/domain/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveNights   = errors.New("number of nights must be positive")
	ErrInvalidGuestCount   = errors.New("guest count must be at least 1")
	ErrNegativeNightlyRate = errors.New("base price per night cannot be negative")
)

type BookingDetails struct {
	Stay       daterange.DateRange
	GuestCount int
}

type ExtraCost struct {
	ExtraID     uuid.UUID
	Name        string
	PricingType extra.PricingType
	UnitPrice   decimal.Decimal
	Multiplier  int
	Cost        decimal.Decimal
}

type BookingCostBreakdown struct {
	NumberOfNights    int
	BaseTotal         decimal.Decimal
	ExtrasTotal       decimal.Decimal
	GrandTotal        decimal.Decimal
	PerExtraBreakdown []ExtraCost
	Currency          money.Currency
}

// NumberOfNights counts started days between the two dates.
func NumberOfNights(details BookingDetails) int {
	return details.Stay.Nights()
}

// CalculateTotalBookingCost prices a stay and its extras. Lines are rounded to the currency's
// minor unit before summing, so GrandTotal always equals BaseTotal + ExtrasTotal.
func CalculateTotalBookingCost(
	basePricePerNight decimal.Decimal,
	numberOfNights int,
	selectedExtras []*extra.Extra,
	details BookingDetails,
	currency money.Currency,
) (BookingCostBreakdown, error) {
	if numberOfNights <= 0 {
		return BookingCostBreakdown{}, ErrNonPositiveNights
	}
	if details.GuestCount < 1 {
		return BookingCostBreakdown{}, ErrInvalidGuestCount
	}
	if basePricePerNight.IsNegative() {
		return BookingCostBreakdown{}, ErrNegativeNightlyRate
	}
	if !currency.IsValid() {
		return BookingCostBreakdown{}, money.ErrUnsupportedCurrency
	}

	baseTotal := currency.Round(basePricePerNight.Mul(decimal.NewFromInt(int64(numberOfNights))))

	lines := make([]ExtraCost, 0, len(selectedExtras))
	extrasTotal := decimal.Zero
	for _, e := range selectedExtras {
		unit := e.UnitPrice(currency)
		mult := e.PricingType().Multiplier(numberOfNights, details.GuestCount)
		cost := currency.Round(unit.Mul(decimal.NewFromInt(int64(mult))))
		lines = append(lines, ExtraCost{
			ExtraID:     e.ID(),
			Name:        e.Name(),
			PricingType: e.PricingType(),
			UnitPrice:   unit,
			Multiplier:  mult,
			Cost:        cost,
		})
		extrasTotal = extrasTotal.Add(cost)
	}

	return BookingCostBreakdown{
		NumberOfNights:    numberOfNights,
		BaseTotal:         baseTotal,
		ExtrasTotal:       extrasTotal,
		GrandTotal:        baseTotal.Add(extrasTotal),
		PerExtraBreakdown: lines,
		Currency:          currency,
	}, nil
}
