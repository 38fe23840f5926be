package cache

import (
	"time"

	"hosteed/internal/domain/commission"
	"hosteed/internal/domain/extra"
	"hosteed/internal/domain/geo"
	"hosteed/internal/domain/property"
	"hosteed/internal/domain/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type propertyRecord struct {
	ID                uuid.UUID       `json:"id"`
	HostID            uuid.UUID       `json:"host_id"`
	PropertyTypeID    *uuid.UUID      `json:"property_type_id,omitempty"`
	Title             string          `json:"title"`
	BasePrice         decimal.Decimal `json:"base_price"`
	Currency          string          `json:"currency"`
	Lat               float64         `json:"lat"`
	Lng               float64         `json:"lng"`
	PromotionPriority string          `json:"promotion_priority"`
	CreatedAt         time.Time       `json:"created_at"`
}

func toPropertyRecord(p *property.Property) propertyRecord {
	return propertyRecord{
		ID:                p.ID(),
		HostID:            p.HostID(),
		PropertyTypeID:    p.PropertyTypeID(),
		Title:             p.Title(),
		BasePrice:         p.BasePrice(),
		Currency:          p.Currency().String(),
		Lat:               p.Location().Lat,
		Lng:               p.Location().Lng,
		PromotionPriority: p.PromotionPriority().String(),
		CreatedAt:         p.CreatedAt(),
	}
}

func (r propertyRecord) domain() *property.Property {
	return property.ReconstructProperty(
		r.ID,
		r.HostID,
		r.PropertyTypeID,
		r.Title,
		r.BasePrice,
		money.Currency(r.Currency),
		geo.Point{Lat: r.Lat, Lng: r.Lng},
		property.PromotionPriority(r.PromotionPriority),
		r.CreatedAt,
	)
}

type extraRecord struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	PriceEUR    decimal.Decimal `json:"price_eur"`
	PriceMGA    decimal.Decimal `json:"price_mga"`
	PricingType string          `json:"pricing_type"`
	OwnerID     *uuid.UUID      `json:"owner_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toExtraRecords(es []*extra.Extra) []extraRecord {
	out := make([]extraRecord, 0, len(es))
	for _, e := range es {
		out = append(out, extraRecord{
			ID:          e.ID(),
			Name:        e.Name(),
			Description: e.Description(),
			PriceEUR:    e.PriceEUR(),
			PriceMGA:    e.PriceMGA(),
			PricingType: e.PricingType().String(),
			OwnerID:     e.OwnerID(),
			CreatedAt:   e.CreatedAt(),
			UpdatedAt:   e.UpdatedAt(),
		})
	}
	return out
}

func extrasFromRecords(rs []extraRecord) []*extra.Extra {
	out := make([]*extra.Extra, 0, len(rs))
	for _, r := range rs {
		out = append(out, extra.ReconstructExtra(
			r.ID,
			r.Name,
			r.Description,
			r.PriceEUR,
			r.PriceMGA,
			extra.PricingType(r.PricingType),
			r.OwnerID,
			r.CreatedAt,
			r.UpdatedAt,
		))
	}
	return out
}

type ruleRecord struct {
	ID             uuid.UUID        `json:"id"`
	Title          string           `json:"title"`
	Rates          commission.Rates `json:"rates"`
	PropertyTypeID *uuid.UUID       `json:"property_type_id,omitempty"`
	Active         bool             `json:"active"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func toRuleRecords(rules []*commission.Rule) []ruleRecord {
	out := make([]ruleRecord, 0, len(rules))
	for _, r := range rules {
		out = append(out, ruleRecord{
			ID:             r.ID(),
			Title:          r.Title(),
			Rates:          r.Rates(),
			PropertyTypeID: r.PropertyTypeID(),
			Active:         r.IsActive(),
			CreatedAt:      r.CreatedAt(),
			UpdatedAt:      r.UpdatedAt(),
		})
	}
	return out
}

func rulesFromRecords(rs []ruleRecord) []*commission.Rule {
	out := make([]*commission.Rule, 0, len(rs))
	for _, r := range rs {
		out = append(out, commission.ReconstructRule(r.ID, r.Title, r.Rates, r.PropertyTypeID, r.Active, r.CreatedAt, r.UpdatedAt))
	}
	return out
}
