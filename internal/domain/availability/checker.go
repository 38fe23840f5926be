package availability

import (
	"errors"
	"fmt"
	"time"

	"hosteed/internal/domain/reservation"
	"hosteed/internal/domain/shared/daterange"

	"github.com/google/uuid"
)

var ErrStartInPast = errors.New("start date cannot be before today")

type EntityKind string

const (
	EntityReservation EntityKind = "reservation"
	EntityBlackout    EntityKind = "blackout"
)

// ConflictError names the first existing entity that overlaps the requested range.
type ConflictError struct {
	Kind  EntityKind
	ID    uuid.UUID
	Range daterange.DateRange
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("requested dates overlap %s %s [%s, %s)",
		e.Kind, e.ID, e.Range.Start.Format(time.DateOnly), e.Range.End.Format(time.DateOnly))
}

// ValidateRequest rejects ranges starting before today. Both are compared as calendar days.
func ValidateRequest(today time.Time, requested daterange.DateRange) error {
	if err := requested.Validate(); err != nil {
		return err
	}
	if daterange.Day(requested.Start).Before(daterange.Day(today)) {
		return ErrStartInPast
	}
	return nil
}

// FindConflict scans blocking reservations first, then blackouts. Touching boundaries never conflict.
func FindConflict(
	requested daterange.DateRange,
	reservations []*reservation.Reservation,
	blackouts []*BlackoutPeriod,
) *ConflictError {
	for _, r := range reservations {
		if !r.IsBlocking() {
			continue
		}
		if r.Stay().Overlaps(requested) {
			return &ConflictError{Kind: EntityReservation, ID: r.ID(), Range: r.Stay()}
		}
	}
	for _, b := range blackouts {
		if b.Period().Overlaps(requested) {
			return &ConflictError{Kind: EntityBlackout, ID: b.ID(), Range: b.Period()}
		}
	}
	return nil
}

// Check validates the request and returns a *ConflictError when the range is taken.
func Check(
	today time.Time,
	requested daterange.DateRange,
	reservations []*reservation.Reservation,
	blackouts []*BlackoutPeriod,
) error {
	if err := ValidateRequest(today, requested); err != nil {
		return err
	}
	if conflict := FindConflict(requested, reservations, blackouts); conflict != nil {
		return conflict
	}
	return nil
}
