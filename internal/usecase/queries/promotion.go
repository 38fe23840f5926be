package queries

import (
	"context"
	"time"

	"hosteed/internal/domain/commission"
	"hosteed/internal/domain/promotion"
	"hosteed/internal/pkg/clock"
	"hosteed/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCommissionRuleNotFound = errs.New("no active commission rule applies to this property")
	ErrInvalidCursor          = errs.New("invalid cursor")
)

type PromotionView struct {
	Promotion *promotion.Promotion
	Status    promotion.Status
}

//go:generate mockgen -source=promotion.go -destination=../../../tests/mock/queries/promotion.go -package=queriesmock
type PromotionQueries interface {
	ListByProperty(ctx context.Context, propertyID uuid.UUID, cursor *Cursor, limit int) ([]PromotionView, *Cursor, error)
	// ValidateCommission reports whether the discount keeps commission and host payout non-negative
	ValidateCommission(ctx context.Context, propertyID uuid.UUID, discountPercentage decimal.Decimal) (bool, error)
}

type promotionQueriesImpl struct {
	properties  PropertyReadStore
	promotions  PromotionReadStore
	commissions CommissionReadStore
	clock       clock.Clock
	loc         *time.Location
}

func NewPromotionQueries(
	properties PropertyReadStore,
	promotions PromotionReadStore,
	commissions CommissionReadStore,
	clk clock.Clock,
	loc *time.Location,
) PromotionQueries {
	return &promotionQueriesImpl{
		properties:  properties,
		promotions:  promotions,
		commissions: commissions,
		clock:       clk,
		loc:         loc,
	}
}

func (q *promotionQueriesImpl) ListByProperty(
	ctx context.Context,
	propertyID uuid.UUID,
	cursor *Cursor,
	limit int,
) ([]PromotionView, *Cursor, error) {
	if _, err := findProperty(ctx, q.properties, propertyID); err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*promotion.Promotion
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.promotions.ListByPropertyFirstPage(ctx, propertyID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, errs.Validation(errs.Mark(derr, ErrInvalidCursor))
		}
		rows, err = q.promotions.ListByPropertyKeyset(ctx, propertyID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt(), last.ID())}
		rows = rows[:limit]
	}

	today := clock.Today(q.clock, q.loc)
	views := make([]PromotionView, len(rows))
	for i, p := range rows {
		views[i] = PromotionView{Promotion: p, Status: p.Status(today)}
	}
	return views, next, nil
}

func (q *promotionQueriesImpl) ValidateCommission(
	ctx context.Context,
	propertyID uuid.UUID,
	discountPercentage decimal.Decimal,
) (bool, error) {
	discount, err := promotion.NewDiscount(discountPercentage)
	if err != nil {
		return false, errs.Validation(err)
	}
	prop, err := findProperty(ctx, q.properties, propertyID)
	if err != nil {
		return false, err
	}
	rule, err := selectRule(ctx, q.commissions, prop.PropertyTypeID())
	if err != nil {
		return false, err
	}
	return commission.ValidatePromotionCommission(prop.BasePrice(), discount.Percentage(), rule.Rates()), nil
}

func selectRule(ctx context.Context, store CommissionReadStore, propertyTypeID *uuid.UUID) (*commission.Rule, error) {
	rules, err := store.ActiveRules(ctx)
	if err != nil {
		return nil, err
	}
	rule, ok := commission.Select(rules, propertyTypeID)
	if !ok {
		return nil, errs.NotFound(ErrCommissionRuleNotFound)
	}
	return rule, nil
}
