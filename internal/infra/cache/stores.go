package cache

import (
	"context"
	"time"

	"hosteed/internal/domain/commission"
	"hosteed/internal/domain/extra"
	"hosteed/internal/domain/geo"
	"hosteed/internal/domain/property"
	"hosteed/internal/domain/shared/daterange"
	"hosteed/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type PropertyStore struct {
	next   queries.PropertyReadStore
	client redis.Cmdable
	ttl    time.Duration
}

func NewPropertyStore(next queries.PropertyReadStore, client redis.Cmdable, ttl time.Duration) *PropertyStore {
	return &PropertyStore{next: next, client: client, ttl: ttl}
}

func (s *PropertyStore) FindByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	rec, err := getOrLoad(ctx, s.client, s.ttl, propertyKey(id.String()), func(ctx context.Context) (propertyRecord, error) {
		p, err := s.next.FindByID(ctx, id)
		if err != nil {
			return propertyRecord{}, err
		}
		return toPropertyRecord(p), nil
	})
	if err != nil {
		return nil, err
	}
	return rec.domain(), nil
}

func (s *PropertyStore) FindInBoundingBox(ctx context.Context, box geo.BoundingBox) ([]*property.Property, error) {
	return s.next.FindInBoundingBox(ctx, box)
}

func (s *PropertyStore) SpecialPrices(ctx context.Context, propertyID uuid.UUID, within daterange.DateRange) ([]*property.SpecialPrice, error) {
	return s.next.SpecialPrices(ctx, propertyID, within)
}

type ExtraStore struct {
	next   queries.ExtraReadStore
	client redis.Cmdable
	ttl    time.Duration
}

func NewExtraStore(next queries.ExtraReadStore, client redis.Cmdable, ttl time.Duration) *ExtraStore {
	return &ExtraStore{next: next, client: client, ttl: ttl}
}

func (s *ExtraStore) ListForProperty(ctx context.Context, propertyID uuid.UUID) ([]*extra.Extra, error) {
	recs, err := getOrLoad(ctx, s.client, s.ttl, propertyExtrasKey(propertyID.String()), func(ctx context.Context) ([]extraRecord, error) {
		es, err := s.next.ListForProperty(ctx, propertyID)
		if err != nil {
			return nil, err
		}
		return toExtraRecords(es), nil
	})
	if err != nil {
		return nil, err
	}
	return extrasFromRecords(recs), nil
}

type CommissionStore struct {
	next   queries.CommissionReadStore
	client redis.Cmdable
	ttl    time.Duration
}

func NewCommissionStore(next queries.CommissionReadStore, client redis.Cmdable, ttl time.Duration) *CommissionStore {
	return &CommissionStore{next: next, client: client, ttl: ttl}
}

func (s *CommissionStore) ActiveRules(ctx context.Context) ([]*commission.Rule, error) {
	recs, err := getOrLoad(ctx, s.client, s.ttl, commissionRulesKey(), func(ctx context.Context) ([]ruleRecord, error) {
		rules, err := s.next.ActiveRules(ctx)
		if err != nil {
			return nil, err
		}
		return toRuleRecords(rules), nil
	})
	if err != nil {
		return nil, err
	}
	return rulesFromRecords(recs), nil
}
