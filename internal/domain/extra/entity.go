package extra

import (
	"errors"
	"strings"
	"time"

	"hosteed/internal/domain/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPricingType = errors.New("invalid extra pricing type")
	ErrEmptyName          = errors.New("extra name is required")
	ErrNegativePrice      = errors.New("extra price cannot be negative")
)

// Extra is a paid add-on. A nil owner makes it available to every host.
type Extra struct {
	id          uuid.UUID
	name        string
	description *string
	priceEUR    decimal.Decimal
	priceMGA    decimal.Decimal
	pricingType PricingType
	ownerID     *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewExtra(
	name string,
	description *string,
	priceEUR, priceMGA decimal.Decimal,
	pricingType PricingType,
	ownerID *uuid.UUID,
) (*Extra, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if priceEUR.IsNegative() || priceMGA.IsNegative() {
		return nil, ErrNegativePrice
	}
	if !pricingType.IsValid() {
		return nil, ErrInvalidPricingType
	}
	return &Extra{
		id:          uuid.New(),
		name:        name,
		description: description,
		priceEUR:    priceEUR,
		priceMGA:    priceMGA,
		pricingType: pricingType,
		ownerID:     ownerID,
	}, nil
}

func ReconstructExtra(
	id uuid.UUID,
	name string,
	description *string,
	priceEUR, priceMGA decimal.Decimal,
	pricingType PricingType,
	ownerID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Extra {
	return &Extra{
		id:          id,
		name:        name,
		description: description,
		priceEUR:    priceEUR,
		priceMGA:    priceMGA,
		pricingType: pricingType,
		ownerID:     ownerID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// UnitPrice selects the stored price for the currency; no conversion happens.
func (e *Extra) UnitPrice(c money.Currency) decimal.Decimal {
	if c == money.MGA {
		return e.priceMGA
	}
	return e.priceEUR
}

func (e *Extra) IsGlobal() bool { return e.ownerID == nil }

func (e *Extra) ID() uuid.UUID             { return e.id }
func (e *Extra) Name() string              { return e.name }
func (e *Extra) Description() *string      { return e.description }
func (e *Extra) PriceEUR() decimal.Decimal { return e.priceEUR }
func (e *Extra) PriceMGA() decimal.Decimal { return e.priceMGA }
func (e *Extra) PricingType() PricingType  { return e.pricingType }
func (e *Extra) OwnerID() *uuid.UUID       { return e.ownerID }
func (e *Extra) CreatedAt() time.Time      { return e.createdAt }
func (e *Extra) UpdatedAt() time.Time      { return e.updatedAt }
