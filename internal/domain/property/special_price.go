package property

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidSpecialPrice = errors.New("special price must be positive and end on or after its start")

// SpecialPrice overrides the nightly base price on every day of the closed range [StartDate, EndDate].
type SpecialPrice struct {
	id            uuid.UUID
	propertyID    uuid.UUID
	pricePerNight decimal.Decimal
	startDate     time.Time
	endDate       time.Time
	active        bool
}

func ReconstructSpecialPrice(
	id, propertyID uuid.UUID,
	pricePerNight decimal.Decimal,
	startDate, endDate time.Time,
	active bool,
) (*SpecialPrice, error) {
	if !pricePerNight.IsPositive() || endDate.Before(startDate) {
		return nil, ErrInvalidSpecialPrice
	}
	return &SpecialPrice{
		id:            id,
		propertyID:    propertyID,
		pricePerNight: pricePerNight,
		startDate:     startDate,
		endDate:       endDate,
		active:        active,
	}, nil
}

func (s *SpecialPrice) AppliesOn(date time.Time) bool {
	return s.active && !date.Before(s.startDate) && !date.After(s.endDate)
}

func (s *SpecialPrice) ID() uuid.UUID                  { return s.id }
func (s *SpecialPrice) PropertyID() uuid.UUID          { return s.propertyID }
func (s *SpecialPrice) PricePerNight() decimal.Decimal { return s.pricePerNight }
func (s *SpecialPrice) StartDate() time.Time           { return s.startDate }
func (s *SpecialPrice) EndDate() time.Time             { return s.endDate }
func (s *SpecialPrice) IsActive() bool                 { return s.active }

// SpecialPriceOn picks the applicable override for date, preferring the most recently started one.
func SpecialPriceOn(prices []*SpecialPrice, date time.Time) *SpecialPrice {
	var chosen *SpecialPrice
	for _, sp := range prices {
		if !sp.AppliesOn(date) {
			continue
		}
		if chosen == nil || sp.startDate.After(chosen.startDate) {
			chosen = sp
		}
	}
	return chosen
}
