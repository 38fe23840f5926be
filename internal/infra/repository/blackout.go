package repository

import (
	"context"

	"hosteed/internal/domain/availability"
	"hosteed/internal/infra"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/infra/repository/converter"

	"github.com/google/uuid"
)

//go:generate mockgen -source=blackout.go -destination=../../../tests/mock/repository/blackout.go -package=repositorymock
type BlackoutWriteQueries interface {
	CreateBlackout(ctx context.Context, db pgq.DBTX, arg pgq.CreateBlackoutParams) error
	DeleteBlackout(ctx context.Context, db pgq.DBTX, id uuid.UUID) (int64, error)
}

type BlackoutRepository struct {
	queries BlackoutWriteQueries
	db      pgq.DBTX
}

func NewBlackoutRepository(queries BlackoutWriteQueries, db pgq.DBTX) *BlackoutRepository {
	return &BlackoutRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BlackoutRepository) Create(ctx context.Context, b *availability.BlackoutPeriod) error {
	if err := r.queries.CreateBlackout(ctx, r.db, converter.BlackoutToCreateParams(b)); err != nil {
		return infra.WrapPgErr("failed to create blackout", err)
	}
	return nil
}

func (r *BlackoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteBlackout(ctx, r.db, id)
	if err != nil {
		return infra.WrapPgErr("failed to delete blackout", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "blackout not found")
	}
	return nil
}
