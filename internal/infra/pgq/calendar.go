package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// DateWindowParams selects rows whose [start_date, end_date) intersects [StartDate, EndDate).
type DateWindowParams struct {
	PropertyID uuid.UUID
	StartDate  pgtype.Date
	EndDate    pgtype.Date
}

const listBlockingReservations = `
SELECT id, property_id, guest_id, start_date, end_date, status, created_at, updated_at
FROM reservations
WHERE property_id = $1
  AND status IN ('confirmed', 'checked_in', 'checked_out')
  AND start_date < $3
  AND end_date > $2
ORDER BY start_date`

func (q *Queries) ListBlockingReservations(ctx context.Context, db DBTX, arg DateWindowParams) ([]Reservation, error) {
	rows, err := db.Query(ctx, listBlockingReservations, arg.PropertyID, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(r pgx.Row) (Reservation, error) {
		var i Reservation
		err := r.Scan(&i.ID, &i.PropertyID, &i.GuestID, &i.StartDate, &i.EndDate, &i.Status, &i.CreatedAt, &i.UpdatedAt)
		return i, err
	})
}

const blackoutColumns = `id, property_id, start_date, end_date, title, description, created_by, created_at`

const listBlackouts = `
SELECT ` + blackoutColumns + `
FROM blackout_periods
WHERE property_id = $1
  AND start_date < $3
  AND end_date > $2
ORDER BY start_date`

func (q *Queries) ListBlackouts(ctx context.Context, db DBTX, arg DateWindowParams) ([]BlackoutPeriod, error) {
	rows, err := db.Query(ctx, listBlackouts, arg.PropertyID, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBlackout)
}

const getBlackoutByID = `SELECT ` + blackoutColumns + ` FROM blackout_periods WHERE id = $1`

func (q *Queries) GetBlackoutByID(ctx context.Context, db DBTX, id uuid.UUID) (BlackoutPeriod, error) {
	return scanBlackout(db.QueryRow(ctx, getBlackoutByID, id))
}

const createBlackout = `
INSERT INTO blackout_periods (id, property_id, start_date, end_date, title, description, created_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

type CreateBlackoutParams struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	StartDate   pgtype.Date
	EndDate     pgtype.Date
	Title       string
	Description pgtype.Text
	CreatedBy   uuid.UUID
	CreatedAt   pgtype.Timestamptz
}

func (q *Queries) CreateBlackout(ctx context.Context, db DBTX, arg CreateBlackoutParams) error {
	_, err := db.Exec(ctx, createBlackout,
		arg.ID, arg.PropertyID, arg.StartDate, arg.EndDate, arg.Title, arg.Description, arg.CreatedBy, arg.CreatedAt)
	return err
}

const deleteBlackout = `DELETE FROM blackout_periods WHERE id = $1`

// DeleteBlackout returns the number of deleted rows.
func (q *Queries) DeleteBlackout(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteBlackout, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanBlackout(r pgx.Row) (BlackoutPeriod, error) {
	var i BlackoutPeriod
	err := r.Scan(&i.ID, &i.PropertyID, &i.StartDate, &i.EndDate, &i.Title, &i.Description, &i.CreatedBy, &i.CreatedAt)
	return i, err
}

const lockProperty = `SELECT pg_advisory_xact_lock($1)`

// LockProperty blocks until the transaction holds the advisory lock for key.
func (q *Queries) LockProperty(ctx context.Context, db DBTX, key int64) error {
	_, err := db.Exec(ctx, lockProperty, key)
	return err
}
