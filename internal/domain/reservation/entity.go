package reservation

import (
	"errors"
	"time"

	"hosteed/internal/domain/shared/daterange"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errors.New("invalid reservation status")

// Reservation is owned by the booking flow; this service only reads it.
type Reservation struct {
	id         uuid.UUID
	propertyID uuid.UUID
	guestID    uuid.UUID
	stay       daterange.DateRange
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func ReconstructReservation(
	id, propertyID, guestID uuid.UUID,
	stay daterange.DateRange,
	status Status,
	createdAt, updatedAt time.Time,
) (*Reservation, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Reservation{
		id:         id,
		propertyID: propertyID,
		guestID:    guestID,
		stay:       stay,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (r *Reservation) IsBlocking() bool {
	return r.status.IsBlocking()
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) PropertyID() uuid.UUID     { return r.propertyID }
func (r *Reservation) GuestID() uuid.UUID        { return r.guestID }
func (r *Reservation) Stay() daterange.DateRange { return r.stay }
func (r *Reservation) Status() Status            { return r.status }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time      { return r.updatedAt }
