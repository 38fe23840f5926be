package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const extraColumns = `id, name, description, price_eur, price_mga, pricing_type, owner_id, created_at, updated_at`

const getExtraByID = `SELECT ` + extraColumns + ` FROM extras WHERE id = $1`

func (q *Queries) GetExtraByID(ctx context.Context, db DBTX, id uuid.UUID) (Extra, error) {
	return scanExtra(db.QueryRow(ctx, getExtraByID, id))
}

const listExtrasForProperty = `
SELECT e.id, e.name, e.description, e.price_eur, e.price_mga, e.pricing_type, e.owner_id, e.created_at, e.updated_at
FROM extras e
JOIN property_extras pe ON pe.extra_id = e.id
WHERE pe.property_id = $1
ORDER BY e.name, e.id`

func (q *Queries) ListExtrasForProperty(ctx context.Context, db DBTX, propertyID uuid.UUID) ([]Extra, error) {
	rows, err := db.Query(ctx, listExtrasForProperty, propertyID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanExtra)
}

const createExtra = `
INSERT INTO extras (id, name, description, price_eur, price_mga, pricing_type, owner_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

type CreateExtraParams struct {
	ID          uuid.UUID
	Name        string
	Description pgtype.Text
	PriceEur    pgtype.Numeric
	PriceMga    pgtype.Numeric
	PricingType string
	OwnerID     pgtype.UUID
}

func (q *Queries) CreateExtra(ctx context.Context, db DBTX, arg CreateExtraParams) error {
	_, err := db.Exec(ctx, createExtra,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.PriceEur,
		arg.PriceMga,
		arg.PricingType,
		arg.OwnerID,
	)
	return err
}

const attachExtraToProperty = `
INSERT INTO property_extras (property_id, extra_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

type AttachExtraToPropertyParams struct {
	PropertyID uuid.UUID
	ExtraID    uuid.UUID
}

func (q *Queries) AttachExtraToProperty(ctx context.Context, db DBTX, arg AttachExtraToPropertyParams) error {
	_, err := db.Exec(ctx, attachExtraToProperty, arg.PropertyID, arg.ExtraID)
	return err
}

func scanExtra(r pgx.Row) (Extra, error) {
	var i Extra
	err := r.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.PriceEur,
		&i.PriceMga,
		&i.PricingType,
		&i.OwnerID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
