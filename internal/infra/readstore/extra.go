package readstore

import (
	"context"

	"hosteed/internal/domain/extra"
	"hosteed/internal/infra"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/infra/repository/converter"

	"github.com/google/uuid"
)

//go:generate mockgen -source=extra.go -destination=../../../tests/mock/readstore/extra.go -package=readstoremock
type ExtraViewQueries interface {
	GetExtraByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Extra, error)
	ListExtrasForProperty(ctx context.Context, db pgq.DBTX, propertyID uuid.UUID) ([]pgq.Extra, error)
}

type ExtraReadStore struct {
	queries ExtraViewQueries
	db      pgq.DBTX
}

func NewExtraReadStore(queries ExtraViewQueries, db pgq.DBTX) *ExtraReadStore {
	return &ExtraReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ExtraReadStore) FindByID(ctx context.Context, id uuid.UUID) (*extra.Extra, error) {
	row, err := r.queries.GetExtraByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapPgErr("failed to get extra by id", err)
	}
	e, err := converter.ExtraFromRow(row)
	if err != nil {
		return nil, infra.WrapPgErr("failed to map extra", err)
	}
	return e, nil
}

func (r *ExtraReadStore) ListForProperty(ctx context.Context, propertyID uuid.UUID) ([]*extra.Extra, error) {
	rows, err := r.queries.ListExtrasForProperty(ctx, r.db, propertyID)
	if err != nil {
		return nil, infra.WrapPgErr("failed to list extras", err)
	}
	out := make([]*extra.Extra, 0, len(rows))
	for _, row := range rows {
		e, err := converter.ExtraFromRow(row)
		if err != nil {
			return nil, infra.WrapPgErr("failed to map extra", err)
		}
		out = append(out, e)
	}
	return out, nil
}
