package readstore

import (
	"context"
	"time"

	"hosteed/internal/domain/promotion"
	"hosteed/internal/domain/shared/daterange"
	"hosteed/internal/infra"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/infra/repository/converter"
	"hosteed/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=promotion.go -destination=../../../tests/mock/readstore/promotion.go -package=readstoremock
type PromotionViewQueries interface {
	GetPromotionByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Promotion, error)
	ListActivePromotionsOverlapping(ctx context.Context, db pgq.DBTX, arg pgq.ListActivePromotionsOverlappingParams) ([]pgq.Promotion, error)
	ListPromotionsFirstPage(ctx context.Context, db pgq.DBTX, arg pgq.ListPromotionsFirstPageParams) ([]pgq.Promotion, error)
	ListPromotionsKeyset(ctx context.Context, db pgq.DBTX, arg pgq.ListPromotionsKeysetParams) ([]pgq.Promotion, error)
}

type PromotionReadStore struct {
	queries PromotionViewQueries
	db      pgq.DBTX
}

func NewPromotionReadStore(queries PromotionViewQueries, db pgq.DBTX) *PromotionReadStore {
	return &PromotionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PromotionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error) {
	row, err := r.queries.GetPromotionByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapPgErr("failed to get promotion by id", err)
	}
	p, err := converter.PromotionFromRow(row)
	if err != nil {
		return nil, infra.WrapPgErr("failed to map promotion", err)
	}
	return p, nil
}

func (r *PromotionReadStore) ActiveOverlapping(ctx context.Context, propertyID uuid.UUID, period promotion.Period) ([]*promotion.Promotion, error) {
	rows, err := r.queries.ListActivePromotionsOverlapping(ctx, r.db, pgq.ListActivePromotionsOverlappingParams{
		PropertyID: propertyID,
		StartDate:  pgconv.DateToPgtype(period.Start()),
		EndDate:    pgconv.DateToPgtype(period.End()),
	})
	if err != nil {
		return nil, infra.WrapPgErr("failed to list overlapping promotions", err)
	}
	return r.mapRows(rows)
}

// ActiveCovering returns active promotions touching any night of within, i.e. [Start, End-1].
func (r *PromotionReadStore) ActiveCovering(ctx context.Context, propertyID uuid.UUID, within daterange.DateRange) ([]*promotion.Promotion, error) {
	rows, err := r.queries.ListActivePromotionsOverlapping(ctx, r.db, pgq.ListActivePromotionsOverlappingParams{
		PropertyID: propertyID,
		StartDate:  pgconv.DateToPgtype(within.Start),
		EndDate:    pgconv.DateToPgtype(within.End.AddDate(0, 0, -1)),
	})
	if err != nil {
		return nil, infra.WrapPgErr("failed to list promotions for stay", err)
	}
	return r.mapRows(rows)
}

func (r *PromotionReadStore) ListByPropertyFirstPage(ctx context.Context, propertyID uuid.UUID, limit int32) ([]*promotion.Promotion, error) {
	rows, err := r.queries.ListPromotionsFirstPage(ctx, r.db, pgq.ListPromotionsFirstPageParams{
		PropertyID: propertyID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapPgErr("failed to list promotions first page", err)
	}
	return r.mapRows(rows)
}

func (r *PromotionReadStore) ListByPropertyKeyset(ctx context.Context, propertyID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*promotion.Promotion, error) {
	rows, err := r.queries.ListPromotionsKeyset(ctx, r.db, pgq.ListPromotionsKeysetParams{
		PropertyID: propertyID,
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapPgErr("failed to list promotions by keyset", err)
	}
	return r.mapRows(rows)
}

func (r *PromotionReadStore) mapRows(rows []pgq.Promotion) ([]*promotion.Promotion, error) {
	out, err := converter.PromotionsFromRows(rows)
	if err != nil {
		return nil, infra.WrapPgErr("failed to map promotion", err)
	}
	return out, nil
}
