package queries

import (
	"context"
	"time"

	"hosteed/internal/domain/promotion"
	"hosteed/internal/domain/property"
	"hosteed/internal/domain/shared/daterange"
	"hosteed/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=pricing.go -destination=../../../tests/mock/queries/pricing.go -package=queriesmock
type PricingQueries interface {
	// Quote resolves each night of [startDate, endDate) under the host's promotion priority
	Quote(ctx context.Context, propertyID uuid.UUID, startDate, endDate time.Time) (*promotion.StayQuote, error)
}

type pricingQueriesImpl struct {
	properties  PropertyReadStore
	promotions  PromotionReadStore
	commissions CommissionReadStore
}

func NewPricingQueries(
	properties PropertyReadStore,
	promotions PromotionReadStore,
	commissions CommissionReadStore,
) PricingQueries {
	return &pricingQueriesImpl{
		properties:  properties,
		promotions:  promotions,
		commissions: commissions,
	}
}

func (q *pricingQueriesImpl) Quote(
	ctx context.Context,
	propertyID uuid.UUID,
	startDate, endDate time.Time,
) (*promotion.StayQuote, error) {
	stay, err := daterange.New(startDate, endDate)
	if err != nil {
		return nil, errs.Validation(err)
	}

	prop, err := findProperty(ctx, q.properties, propertyID)
	if err != nil {
		return nil, err
	}
	rule, err := selectRule(ctx, q.commissions, prop.PropertyTypeID())
	if err != nil {
		return nil, err
	}
	specials, err := q.properties.SpecialPrices(ctx, propertyID, stay)
	if err != nil {
		return nil, err
	}
	promos, err := q.promotions.ActiveCovering(ctx, propertyID, stay)
	if err != nil {
		return nil, err
	}

	dates := stay.Dates()
	nights := make([]promotion.NightInput, len(dates))
	for i, date := range dates {
		nights[i] = promotion.NightInput{
			Date:         date,
			BasePrice:    prop.BasePrice(),
			SpecialPrice: property.SpecialPriceOn(specials, date),
			Promotion:    promotion.ActiveOn(promos, date),
		}
	}

	resolver := promotion.NewResolver(rule.Rates(), prop.Currency())
	quote := resolver.ResolveStay(prop.PromotionPriority(), nights)
	return &quote, nil
}
