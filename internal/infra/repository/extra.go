package repository

import (
	"context"

	"hosteed/internal/domain/extra"
	"hosteed/internal/infra"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/infra/repository/converter"

	"github.com/google/uuid"
)

//go:generate mockgen -source=extra.go -destination=../../../tests/mock/repository/extra.go -package=repositorymock
type ExtraWriteQueries interface {
	CreateExtra(ctx context.Context, db pgq.DBTX, arg pgq.CreateExtraParams) error
	AttachExtraToProperty(ctx context.Context, db pgq.DBTX, arg pgq.AttachExtraToPropertyParams) error
}

type ExtraRepository struct {
	queries ExtraWriteQueries
	db      pgq.DBTX
}

func NewExtraRepository(queries ExtraWriteQueries, db pgq.DBTX) *ExtraRepository {
	return &ExtraRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ExtraRepository) Create(ctx context.Context, e *extra.Extra) error {
	if err := r.queries.CreateExtra(ctx, r.db, converter.ExtraToCreateParams(e)); err != nil {
		return infra.WrapPgErr("failed to create extra", err)
	}
	return nil
}

// AttachToProperty is idempotent; attaching twice keeps one link.
func (r *ExtraRepository) AttachToProperty(ctx context.Context, propertyID, extraID uuid.UUID) error {
	params := pgq.AttachExtraToPropertyParams{PropertyID: propertyID, ExtraID: extraID}
	if err := r.queries.AttachExtraToProperty(ctx, r.db, params); err != nil {
		return infra.WrapPgErr("failed to attach extra", err)
	}
	return nil
}
