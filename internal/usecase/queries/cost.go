package queries

import (
	"context"
	"time"

	"hosteed/internal/domain/extra"
	"hosteed/internal/domain/pricing"
	"hosteed/internal/domain/shared/daterange"
	"hosteed/internal/domain/shared/money"
	"hosteed/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrExtraNotFound    = errs.New("extra not found for this property")
	ErrCurrencyMismatch = errs.New("currency differs from the property's currency")
)

type CostQuoteInput struct {
	PropertyID       uuid.UUID
	StartDate        time.Time
	EndDate          time.Time
	GuestCount       int
	SelectedExtraIDs []uuid.UUID
	Currency         money.Currency
}

//go:generate mockgen -source=cost.go -destination=../../../tests/mock/queries/cost.go -package=queriesmock
type CostQueries interface {
	Quote(ctx context.Context, in CostQuoteInput) (*pricing.BookingCostBreakdown, error)
}

type costQueriesImpl struct {
	properties PropertyReadStore
	extras     ExtraReadStore
}

func NewCostQueries(properties PropertyReadStore, extras ExtraReadStore) CostQueries {
	return &costQueriesImpl{properties: properties, extras: extras}
}

func (q *costQueriesImpl) Quote(ctx context.Context, in CostQuoteInput) (*pricing.BookingCostBreakdown, error) {
	stay, err := daterange.New(in.StartDate, in.EndDate)
	if err != nil {
		return nil, errs.Validation(err)
	}
	if !in.Currency.IsValid() {
		return nil, errs.Validation(money.ErrUnsupportedCurrency)
	}

	prop, err := findProperty(ctx, q.properties, in.PropertyID)
	if err != nil {
		return nil, err
	}
	if prop.Currency() != in.Currency {
		return nil, errs.Validation(ErrCurrencyMismatch)
	}

	selected, err := q.selectExtras(ctx, in.PropertyID, in.SelectedExtraIDs)
	if err != nil {
		return nil, err
	}

	details := pricing.BookingDetails{Stay: stay, GuestCount: in.GuestCount}
	breakdown, err := pricing.CalculateTotalBookingCost(
		prop.BasePrice(),
		pricing.NumberOfNights(details),
		selected,
		details,
		in.Currency,
	)
	if err != nil {
		return nil, errs.Validation(err)
	}
	return &breakdown, nil
}

// selectExtras keeps request order and ignores repeated ids.
func (q *costQueriesImpl) selectExtras(ctx context.Context, propertyID uuid.UUID, ids []uuid.UUID) ([]*extra.Extra, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	offered, err := q.extras.ListForProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*extra.Extra, len(offered))
	for _, e := range offered {
		byID[e.ID()] = e
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	selected := make([]*extra.Extra, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		e, ok := byID[id]
		if !ok {
			return nil, errs.NotFound(errs.Wrapf(ErrExtraNotFound, "extra %s", id))
		}
		selected = append(selected, e)
	}
	return selected, nil
}
