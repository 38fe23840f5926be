package queries

import (
	"context"
	"fmt"
	"time"

	"hosteed/internal/domain/availability"
	"hosteed/internal/domain/shared/daterange"
	"hosteed/internal/pkg/clock"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/shared"

	"github.com/google/uuid"
)

// calendarHorizon bounds the exported feed.
const calendarHorizon = 2 * 365 * 24 * time.Hour

type AvailabilityResult struct {
	Available bool
	Conflict  *availability.ConflictError
}

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock
type AvailabilityQueries interface {
	Check(ctx context.Context, propertyID uuid.UUID, startDate, endDate time.Time) (*AvailabilityResult, error)
	// ExportCalendar renders upcoming blocking reservations and blackouts as iCalendar
	ExportCalendar(ctx context.Context, propertyID uuid.UUID) ([]byte, error)
}

type availabilityQueriesImpl struct {
	properties PropertyReadStore
	calendar   CalendarReadStore
	codec      shared.CalendarCodec
	clock      clock.Clock
	loc        *time.Location
}

func NewAvailabilityQueries(
	properties PropertyReadStore,
	calendar CalendarReadStore,
	codec shared.CalendarCodec,
	clk clock.Clock,
	loc *time.Location,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		properties: properties,
		calendar:   calendar,
		codec:      codec,
		clock:      clk,
		loc:        loc,
	}
}

func (q *availabilityQueriesImpl) Check(
	ctx context.Context,
	propertyID uuid.UUID,
	startDate, endDate time.Time,
) (*AvailabilityResult, error) {
	requested, err := daterange.New(startDate, endDate)
	if err != nil {
		return nil, errs.Validation(err)
	}
	if err := availability.ValidateRequest(clock.Today(q.clock, q.loc), requested); err != nil {
		return nil, errs.Validation(err)
	}
	if _, err := findProperty(ctx, q.properties, propertyID); err != nil {
		return nil, err
	}

	reservations, err := q.calendar.BlockingReservations(ctx, propertyID, requested)
	if err != nil {
		return nil, err
	}
	blackouts, err := q.calendar.Blackouts(ctx, propertyID, requested)
	if err != nil {
		return nil, err
	}

	conflict := availability.FindConflict(requested, reservations, blackouts)
	return &AvailabilityResult{Available: conflict == nil, Conflict: conflict}, nil
}

func (q *availabilityQueriesImpl) ExportCalendar(ctx context.Context, propertyID uuid.UUID) ([]byte, error) {
	prop, err := findProperty(ctx, q.properties, propertyID)
	if err != nil {
		return nil, err
	}

	today := clock.Today(q.clock, q.loc)
	window, err := daterange.New(today, today.Add(calendarHorizon))
	if err != nil {
		return nil, err
	}

	reservations, err := q.calendar.BlockingReservations(ctx, propertyID, window)
	if err != nil {
		return nil, err
	}
	blackouts, err := q.calendar.Blackouts(ctx, propertyID, window)
	if err != nil {
		return nil, err
	}

	events := make([]shared.CalendarEvent, 0, len(reservations)+len(blackouts))
	for _, r := range reservations {
		events = append(events, shared.CalendarEvent{
			UID:     fmt.Sprintf("reservation-%s@hosteed", r.ID()),
			Summary: "Reserved",
			Start:   r.Stay().Start,
			End:     r.Stay().End,
		})
	}
	for _, b := range blackouts {
		events = append(events, shared.CalendarEvent{
			UID:         fmt.Sprintf("blackout-%s@hosteed", b.ID()),
			Summary:     b.Title(),
			Description: b.Description(),
			Start:       b.Period().Start,
			End:         b.Period().End,
		})
	}

	return q.codec.Encode(prop.Title(), events)
}
