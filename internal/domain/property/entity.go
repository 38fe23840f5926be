package property

import (
	"time"

	"hosteed/internal/domain/geo"
	"hosteed/internal/domain/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Property is the read-side view of a listing owned by the catalogue service.
type Property struct {
	id                uuid.UUID
	hostID            uuid.UUID
	propertyTypeID    *uuid.UUID
	title             string
	basePrice         decimal.Decimal
	currency          money.Currency
	location          geo.Point
	promotionPriority PromotionPriority
	createdAt         time.Time
}

func ReconstructProperty(
	id, hostID uuid.UUID,
	propertyTypeID *uuid.UUID,
	title string,
	basePrice decimal.Decimal,
	currency money.Currency,
	location geo.Point,
	promotionPriority PromotionPriority,
	createdAt time.Time,
) *Property {
	if !promotionPriority.IsValid() {
		promotionPriority = DefaultPromotionPriority
	}
	return &Property{
		id:                id,
		hostID:            hostID,
		propertyTypeID:    propertyTypeID,
		title:             title,
		basePrice:         basePrice,
		currency:          currency,
		location:          location,
		promotionPriority: promotionPriority,
		createdAt:         createdAt,
	}
}

func (p *Property) ID() uuid.UUID                        { return p.id }
func (p *Property) HostID() uuid.UUID                    { return p.hostID }
func (p *Property) PropertyTypeID() *uuid.UUID           { return p.propertyTypeID }
func (p *Property) Title() string                        { return p.title }
func (p *Property) BasePrice() decimal.Decimal           { return p.basePrice }
func (p *Property) Currency() money.Currency             { return p.currency }
func (p *Property) Location() geo.Point                  { return p.location }
func (p *Property) PromotionPriority() PromotionPriority { return p.promotionPriority }
func (p *Property) CreatedAt() time.Time                 { return p.createdAt }
