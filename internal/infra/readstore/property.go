package readstore

import (
	"context"

	"hosteed/internal/domain/geo"
	"hosteed/internal/domain/property"
	"hosteed/internal/domain/shared/daterange"
	"hosteed/internal/infra"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/infra/repository/converter"
	"hosteed/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=property.go -destination=../../../tests/mock/readstore/property.go -package=readstoremock
type PropertyViewQueries interface {
	GetPropertyByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Property, error)
	ListPropertiesInBox(ctx context.Context, db pgq.DBTX, arg pgq.ListPropertiesInBoxParams) ([]pgq.Property, error)
	ListSpecialPrices(ctx context.Context, db pgq.DBTX, arg pgq.ListSpecialPricesParams) ([]pgq.SpecialPrice, error)
}

type PropertyReadStore struct {
	queries PropertyViewQueries
	db      pgq.DBTX
}

func NewPropertyReadStore(queries PropertyViewQueries, db pgq.DBTX) *PropertyReadStore {
	return &PropertyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	row, err := r.queries.GetPropertyByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapPgErr("failed to get property by id", err)
	}
	p, err := converter.PropertyFromRow(row)
	if err != nil {
		return nil, infra.WrapPgErr("failed to map property", err)
	}
	return p, nil
}

// FindInBoundingBox returns candidates only; callers still apply the exact distance.
func (r *PropertyReadStore) FindInBoundingBox(ctx context.Context, box geo.BoundingBox) ([]*property.Property, error) {
	rows, err := r.queries.ListPropertiesInBox(ctx, r.db, pgq.ListPropertiesInBoxParams{
		MinLat: box.MinLat,
		MaxLat: box.MaxLat,
		MinLng: box.MinLng,
		MaxLng: box.MaxLng,
	})
	if err != nil {
		return nil, infra.WrapPgErr("failed to list properties in bounding box", err)
	}
	out := make([]*property.Property, 0, len(rows))
	for _, row := range rows {
		p, err := converter.PropertyFromRow(row)
		if err != nil {
			return nil, infra.WrapPgErr("failed to map property", err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PropertyReadStore) SpecialPrices(ctx context.Context, propertyID uuid.UUID, within daterange.DateRange) ([]*property.SpecialPrice, error) {
	rows, err := r.queries.ListSpecialPrices(ctx, r.db, pgq.ListSpecialPricesParams{
		PropertyID: propertyID,
		StartDate:  pgconv.DateToPgtype(within.Start),
		EndDate:    pgconv.DateToPgtype(within.End),
	})
	if err != nil {
		return nil, infra.WrapPgErr("failed to list special prices", err)
	}
	out := make([]*property.SpecialPrice, 0, len(rows))
	for _, row := range rows {
		sp, err := converter.SpecialPriceFromRow(row)
		if err != nil {
			return nil, infra.WrapPgErr("failed to map special price", err)
		}
		out = append(out, sp)
	}
	return out, nil
}
