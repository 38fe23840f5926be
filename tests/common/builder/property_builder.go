//go:build unit || e2e

package builder

import (
	"time"

	"hosteed/internal/domain/geo"
	"hosteed/internal/domain/property"
	"hosteed/internal/domain/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PropertyBuilder struct {
	ID                uuid.UUID
	HostID            uuid.UUID
	PropertyTypeID    *uuid.UUID
	Title             string
	BasePrice         decimal.Decimal
	Currency          money.Currency
	Lat               float64
	Lng               float64
	PromotionPriority property.PromotionPriority
	CreatedAt         time.Time
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:                uuid.New(),
		HostID:            uuid.New(),
		Title:             "Villa Ambatoloaka",
		BasePrice:         decimal.NewFromInt(100),
		Currency:          money.EUR,
		Lat:               -13.3986,
		Lng:               48.2650,
		PromotionPriority: property.DefaultPromotionPriority,
		CreatedAt:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(b)
	return b
}

func (b *PropertyBuilder) BuildDomain() *property.Property {
	location, err := geo.NewPoint(b.Lat, b.Lng)
	if err != nil {
		panic(err)
	}
	return property.ReconstructProperty(
		b.ID, b.HostID, b.PropertyTypeID, b.Title, b.BasePrice, b.Currency, location, b.PromotionPriority, b.CreatedAt,
	)
}
