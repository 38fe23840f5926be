package converter

import (
	"hosteed/internal/domain/availability"
	"hosteed/internal/domain/reservation"
	"hosteed/internal/domain/shared/daterange"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/pkg/pgconv"
)

func ReservationFromRow(row pgq.Reservation) (*reservation.Reservation, error) {
	stay, err := daterange.New(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		row.ID,
		row.PropertyID,
		row.GuestID,
		stay,
		reservation.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func BlackoutFromRow(row pgq.BlackoutPeriod) (*availability.BlackoutPeriod, error) {
	period, err := daterange.New(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
	if err != nil {
		return nil, err
	}
	return availability.ReconstructBlackoutPeriod(
		row.ID,
		row.PropertyID,
		period,
		row.Title,
		pgconv.StringPtrFromPgtype(row.Description),
		row.CreatedBy,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func BlackoutToCreateParams(b *availability.BlackoutPeriod) pgq.CreateBlackoutParams {
	return pgq.CreateBlackoutParams{
		ID:          b.ID(),
		PropertyID:  b.PropertyID(),
		StartDate:   pgconv.DateToPgtype(b.Period().Start),
		EndDate:     pgconv.DateToPgtype(b.Period().End),
		Title:       b.Title(),
		Description: pgconv.StringPtrToPgtype(b.Description()),
		CreatedBy:   b.CreatedBy(),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
	}
}
