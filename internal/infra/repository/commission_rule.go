package repository

import (
	"context"

	"hosteed/internal/domain/commission"
	"hosteed/internal/infra"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/infra/repository/converter"
)

//go:generate mockgen -source=commission_rule.go -destination=../../../tests/mock/repository/commission_rule.go -package=repositorymock
type CommissionRuleWriteQueries interface {
	CreateCommissionRule(ctx context.Context, db pgq.DBTX, arg pgq.CreateCommissionRuleParams) error
	UpdateCommissionRule(ctx context.Context, db pgq.DBTX, arg pgq.UpdateCommissionRuleParams) (int64, error)
}

type CommissionRuleRepository struct {
	queries CommissionRuleWriteQueries
	db      pgq.DBTX
}

func NewCommissionRuleRepository(queries CommissionRuleWriteQueries, db pgq.DBTX) *CommissionRuleRepository {
	return &CommissionRuleRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CommissionRuleRepository) Create(ctx context.Context, rule *commission.Rule) error {
	if err := r.queries.CreateCommissionRule(ctx, r.db, converter.CommissionRuleToCreateParams(rule)); err != nil {
		return infra.WrapPgErr("failed to create commission rule", err)
	}
	return nil
}

func (r *CommissionRuleRepository) Update(ctx context.Context, rule *commission.Rule) error {
	n, err := r.queries.UpdateCommissionRule(ctx, r.db, converter.CommissionRuleToUpdateParams(rule))
	if err != nil {
		return infra.WrapPgErr("failed to update commission rule", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "commission rule not found")
	}
	return nil
}
