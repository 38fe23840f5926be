package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const propertyColumns = `
	p.id, p.host_id, p.property_type_id, p.title, p.base_price, p.currency,
	p.latitude, p.longitude, u.promotion_priority, p.created_at`

const getPropertyByID = `SELECT` + propertyColumns + `
FROM properties p
JOIN users u ON u.id = p.host_id
WHERE p.id = $1`

func (q *Queries) GetPropertyByID(ctx context.Context, db DBTX, id uuid.UUID) (Property, error) {
	row := db.QueryRow(ctx, getPropertyByID, id)
	return scanProperty(row)
}

const listPropertiesInBox = `SELECT` + propertyColumns + `
FROM properties p
JOIN users u ON u.id = p.host_id
WHERE p.latitude BETWEEN $1 AND $2
  AND p.longitude BETWEEN $3 AND $4`

type ListPropertiesInBoxParams struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

func (q *Queries) ListPropertiesInBox(ctx context.Context, db DBTX, arg ListPropertiesInBoxParams) ([]Property, error) {
	rows, err := db.Query(ctx, listPropertiesInBox, arg.MinLat, arg.MaxLat, arg.MinLng, arg.MaxLng)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanProperty)
}

const listSpecialPrices = `
SELECT id, property_id, price_per_night, start_date, end_date, active
FROM special_prices
WHERE property_id = $1
  AND active
  AND start_date < $3
  AND end_date >= $2
ORDER BY start_date`

type ListSpecialPricesParams struct {
	PropertyID uuid.UUID
	StartDate  pgtype.Date
	EndDate    pgtype.Date
}

func (q *Queries) ListSpecialPrices(ctx context.Context, db DBTX, arg ListSpecialPricesParams) ([]SpecialPrice, error) {
	rows, err := db.Query(ctx, listSpecialPrices, arg.PropertyID, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(r pgx.Row) (SpecialPrice, error) {
		var i SpecialPrice
		err := r.Scan(&i.ID, &i.PropertyID, &i.PricePerNight, &i.StartDate, &i.EndDate, &i.Active)
		return i, err
	})
}

func scanProperty(r pgx.Row) (Property, error) {
	var i Property
	err := r.Scan(
		&i.ID,
		&i.HostID,
		&i.PropertyTypeID,
		&i.Title,
		&i.BasePrice,
		&i.Currency,
		&i.Latitude,
		&i.Longitude,
		&i.PromotionPriority,
		&i.CreatedAt,
	)
	return i, err
}

// collect scans every row and closes rows.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()
	var items []T
	for rows.Next() {
		i, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
