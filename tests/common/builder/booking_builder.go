//go:build unit || e2e

package builder

import (
	"time"

	"hosteed/internal/domain/availability"
	"hosteed/internal/domain/commission"
	"hosteed/internal/domain/extra"
	"hosteed/internal/domain/promotion"
	"hosteed/internal/domain/property"
	"hosteed/internal/domain/reservation"
	"hosteed/internal/domain/shared/daterange"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var createdAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Day parses a YYYY-MM-DD literal at UTC midnight.
func Day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func Range(start, end string) daterange.DateRange {
	r, err := daterange.New(Day(start), Day(end))
	if err != nil {
		panic(err)
	}
	return r
}

func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Reservation(propertyID uuid.UUID, start, end string, status reservation.Status) *reservation.Reservation {
	r, err := reservation.ReconstructReservation(uuid.New(), propertyID, uuid.New(), Range(start, end), status, createdAt, createdAt)
	if err != nil {
		panic(err)
	}
	return r
}

func Blackout(propertyID uuid.UUID, start, end, title string) *availability.BlackoutPeriod {
	return availability.ReconstructBlackoutPeriod(uuid.New(), propertyID, Range(start, end), title, nil, uuid.New(), createdAt)
}

func Promotion(propertyID uuid.UUID, pct, start, end string, active bool) *promotion.Promotion {
	return PromotionCreatedAt(propertyID, pct, start, end, active, createdAt)
}

func PromotionCreatedAt(propertyID uuid.UUID, pct, start, end string, active bool, at time.Time) *promotion.Promotion {
	discount, err := promotion.NewDiscount(Dec(pct))
	if err != nil {
		panic(err)
	}
	period, err := promotion.NewPeriod(Day(start), Day(end))
	if err != nil {
		panic(err)
	}
	return promotion.ReconstructPromotion(uuid.New(), propertyID, discount, period, active, uuid.New(), at, at)
}

func SpecialPrice(propertyID uuid.UUID, price, start, end string) *property.SpecialPrice {
	sp, err := property.ReconstructSpecialPrice(uuid.New(), propertyID, Dec(price), Day(start), Day(end), true)
	if err != nil {
		panic(err)
	}
	return sp
}

// Rates builds commission rates from host rate, host fixed fee, client rate and client fixed fee.
func Rates(hostRate, hostFixed, clientRate, clientFixed string) commission.Rates {
	return commission.Rates{
		HostRate:    Dec(hostRate),
		HostFixed:   Dec(hostFixed),
		ClientRate:  Dec(clientRate),
		ClientFixed: Dec(clientFixed),
	}
}

func GlobalRule(rates commission.Rates) *commission.Rule {
	return commission.ReconstructRule(uuid.New(), "Default", rates, nil, true, createdAt, createdAt)
}

func TypedRule(propertyTypeID uuid.UUID, rates commission.Rates) *commission.Rule {
	id := propertyTypeID
	return commission.ReconstructRule(uuid.New(), "Type rule", rates, &id, true, createdAt, createdAt)
}

func Extra(name, eur, mga string, pt extra.PricingType, ownerID *uuid.UUID) *extra.Extra {
	return extra.ReconstructExtra(uuid.New(), name, nil, Dec(eur), Dec(mga), pt, ownerID, createdAt, createdAt)
}
