package readstore

import (
	"context"

	"hosteed/internal/domain/commission"
	"hosteed/internal/infra"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/infra/repository/converter"
	"hosteed/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=commission.go -destination=../../../tests/mock/readstore/commission.go -package=readstoremock
type CommissionViewQueries interface {
	GetCommissionRuleByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.CommissionRule, error)
	ListActiveCommissionRules(ctx context.Context, db pgq.DBTX) ([]pgq.CommissionRule, error)
	ListActiveCommissionRulesForType(ctx context.Context, db pgq.DBTX, propertyTypeID pgtype.UUID) ([]pgq.CommissionRule, error)
}

type CommissionReadStore struct {
	queries CommissionViewQueries
	db      pgq.DBTX
}

func NewCommissionReadStore(queries CommissionViewQueries, db pgq.DBTX) *CommissionReadStore {
	return &CommissionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommissionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*commission.Rule, error) {
	row, err := r.queries.GetCommissionRuleByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapPgErr("failed to get commission rule by id", err)
	}
	rule, err := converter.CommissionRuleFromRow(row)
	if err != nil {
		return nil, infra.WrapPgErr("failed to map commission rule", err)
	}
	return rule, nil
}

func (r *CommissionReadStore) ActiveRules(ctx context.Context) ([]*commission.Rule, error) {
	rows, err := r.queries.ListActiveCommissionRules(ctx, r.db)
	if err != nil {
		return nil, infra.WrapPgErr("failed to list commission rules", err)
	}
	return mapRules(rows)
}

// ActiveRulesFor returns global rules plus those scoped to propertyTypeID.
func (r *CommissionReadStore) ActiveRulesFor(ctx context.Context, propertyTypeID *uuid.UUID) ([]*commission.Rule, error) {
	rows, err := r.queries.ListActiveCommissionRulesForType(ctx, r.db, pgconv.UUIDPtrToPgtype(propertyTypeID))
	if err != nil {
		return nil, infra.WrapPgErr("failed to list commission rules", err)
	}
	return mapRules(rows)
}

func mapRules(rows []pgq.CommissionRule) ([]*commission.Rule, error) {
	out, err := converter.CommissionRulesFromRows(rows)
	if err != nil {
		return nil, infra.WrapPgErr("failed to map commission rule", err)
	}
	return out, nil
}
