package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const promotionColumns = `id, property_id, discount_percentage, start_date, end_date, active, created_by, created_at, updated_at`

const getPromotionByID = `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1`

func (q *Queries) GetPromotionByID(ctx context.Context, db DBTX, id uuid.UUID) (Promotion, error) {
	return scanPromotion(db.QueryRow(ctx, getPromotionByID, id))
}

// Promotion periods are closed, so a shared boundary day overlaps.
const listActivePromotionsOverlapping = `
SELECT ` + promotionColumns + `
FROM promotions
WHERE property_id = $1
  AND active
  AND start_date <= $3
  AND end_date >= $2
ORDER BY created_at DESC, id DESC`

type ListActivePromotionsOverlappingParams struct {
	PropertyID uuid.UUID
	StartDate  pgtype.Date
	EndDate    pgtype.Date
}

func (q *Queries) ListActivePromotionsOverlapping(ctx context.Context, db DBTX, arg ListActivePromotionsOverlappingParams) ([]Promotion, error) {
	rows, err := db.Query(ctx, listActivePromotionsOverlapping, arg.PropertyID, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPromotion)
}

const listPromotionsFirstPage = `
SELECT ` + promotionColumns + `
FROM promotions
WHERE property_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`

type ListPromotionsFirstPageParams struct {
	PropertyID uuid.UUID
	Limit      int32
}

func (q *Queries) ListPromotionsFirstPage(ctx context.Context, db DBTX, arg ListPromotionsFirstPageParams) ([]Promotion, error) {
	rows, err := db.Query(ctx, listPromotionsFirstPage, arg.PropertyID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPromotion)
}

const listPromotionsKeyset = `
SELECT ` + promotionColumns + `
FROM promotions
WHERE property_id = $1
  AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`

type ListPromotionsKeysetParams struct {
	PropertyID uuid.UUID
	CreatedAt  pgtype.Timestamptz
	ID         uuid.UUID
	Limit      int32
}

func (q *Queries) ListPromotionsKeyset(ctx context.Context, db DBTX, arg ListPromotionsKeysetParams) ([]Promotion, error) {
	rows, err := db.Query(ctx, listPromotionsKeyset, arg.PropertyID, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPromotion)
}

const createPromotion = `
INSERT INTO promotions (` + promotionColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

type CreatePromotionParams struct {
	ID                 uuid.UUID
	PropertyID         uuid.UUID
	DiscountPercentage pgtype.Numeric
	StartDate          pgtype.Date
	EndDate            pgtype.Date
	Active             bool
	CreatedBy          uuid.UUID
	CreatedAt          pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

func (q *Queries) CreatePromotion(ctx context.Context, db DBTX, arg CreatePromotionParams) error {
	_, err := db.Exec(ctx, createPromotion,
		arg.ID,
		arg.PropertyID,
		arg.DiscountPercentage,
		arg.StartDate,
		arg.EndDate,
		arg.Active,
		arg.CreatedBy,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updatePromotionActive = `UPDATE promotions SET active = $2, updated_at = $3 WHERE id = $1`

type UpdatePromotionActiveParams struct {
	ID        uuid.UUID
	Active    bool
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdatePromotionActive(ctx context.Context, db DBTX, arg UpdatePromotionActiveParams) (int64, error) {
	tag, err := db.Exec(ctx, updatePromotionActive, arg.ID, arg.Active, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanPromotion(r pgx.Row) (Promotion, error) {
	var i Promotion
	err := r.Scan(
		&i.ID,
		&i.PropertyID,
		&i.DiscountPercentage,
		&i.StartDate,
		&i.EndDate,
		&i.Active,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
