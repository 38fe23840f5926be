package readstore

import (
	"context"

	"hosteed/internal/domain/availability"
	"hosteed/internal/domain/reservation"
	"hosteed/internal/domain/shared/daterange"
	"hosteed/internal/infra"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/infra/repository/converter"
	"hosteed/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=calendar.go -destination=../../../tests/mock/readstore/calendar.go -package=readstoremock
type CalendarViewQueries interface {
	ListBlockingReservations(ctx context.Context, db pgq.DBTX, arg pgq.DateWindowParams) ([]pgq.Reservation, error)
	ListBlackouts(ctx context.Context, db pgq.DBTX, arg pgq.DateWindowParams) ([]pgq.BlackoutPeriod, error)
	GetBlackoutByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.BlackoutPeriod, error)
}

type CalendarReadStore struct {
	queries CalendarViewQueries
	db      pgq.DBTX
}

func NewCalendarReadStore(queries CalendarViewQueries, db pgq.DBTX) *CalendarReadStore {
	return &CalendarReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CalendarReadStore) BlockingReservations(ctx context.Context, propertyID uuid.UUID, within daterange.DateRange) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListBlockingReservations(ctx, r.db, window(propertyID, within))
	if err != nil {
		return nil, infra.WrapPgErr("failed to list reservations", err)
	}
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromRow(row)
		if err != nil {
			return nil, infra.WrapPgErr("failed to map reservation", err)
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *CalendarReadStore) Blackouts(ctx context.Context, propertyID uuid.UUID, within daterange.DateRange) ([]*availability.BlackoutPeriod, error) {
	rows, err := r.queries.ListBlackouts(ctx, r.db, window(propertyID, within))
	if err != nil {
		return nil, infra.WrapPgErr("failed to list blackouts", err)
	}
	out := make([]*availability.BlackoutPeriod, 0, len(rows))
	for _, row := range rows {
		b, err := converter.BlackoutFromRow(row)
		if err != nil {
			return nil, infra.WrapPgErr("failed to map blackout", err)
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *CalendarReadStore) BlackoutByID(ctx context.Context, id uuid.UUID) (*availability.BlackoutPeriod, error) {
	row, err := r.queries.GetBlackoutByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapPgErr("failed to get blackout by id", err)
	}
	b, err := converter.BlackoutFromRow(row)
	if err != nil {
		return nil, infra.WrapPgErr("failed to map blackout", err)
	}
	return b, nil
}

func window(propertyID uuid.UUID, within daterange.DateRange) pgq.DateWindowParams {
	return pgq.DateWindowParams{
		PropertyID: propertyID,
		StartDate:  pgconv.DateToPgtype(within.Start),
		EndDate:    pgconv.DateToPgtype(within.End),
	}
}
