package repository

import (
	"context"

	"hosteed/internal/domain/promotion"
	"hosteed/internal/infra"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/infra/repository/converter"
	"hosteed/internal/pkg/pgconv"
)

//go:generate mockgen -source=promotion.go -destination=../../../tests/mock/repository/promotion.go -package=repositorymock
type PromotionWriteQueries interface {
	CreatePromotion(ctx context.Context, db pgq.DBTX, arg pgq.CreatePromotionParams) error
	UpdatePromotionActive(ctx context.Context, db pgq.DBTX, arg pgq.UpdatePromotionActiveParams) (int64, error)
}

type PromotionRepository struct {
	queries PromotionWriteQueries
	db      pgq.DBTX
}

func NewPromotionRepository(queries PromotionWriteQueries, db pgq.DBTX) *PromotionRepository {
	return &PromotionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PromotionRepository) Create(ctx context.Context, p *promotion.Promotion) error {
	if err := r.queries.CreatePromotion(ctx, r.db, converter.PromotionToCreateParams(p)); err != nil {
		return infra.WrapPgErr("failed to create promotion", err)
	}
	return nil
}

func (r *PromotionRepository) UpdateActive(ctx context.Context, p *promotion.Promotion) error {
	params := pgq.UpdatePromotionActiveParams{
		ID:        p.ID(),
		Active:    p.IsActive(),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	}
	n, err := r.queries.UpdatePromotionActive(ctx, r.db, params)
	if err != nil {
		return infra.WrapPgErr("failed to update promotion", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "promotion not found")
	}
	return nil
}
