package promotion

import (
	"errors"
	"time"

	"hosteed/internal/domain/shared/daterange"

	"github.com/google/uuid"
)

var (
	ErrStartInPast      = errors.New("promotion cannot start before today")
	ErrAlreadyInactive  = errors.New("promotion is already inactive")
	ErrPropertyMismatch = errors.New("promotion belongs to another property")
)

type Promotion struct {
	id         uuid.UUID
	propertyID uuid.UUID
	discount   Discount
	period     Period
	active     bool
	createdBy  uuid.UUID
	createdAt  time.Time
	updatedAt  time.Time
}

func NewPromotion(
	propertyID uuid.UUID,
	discount Discount,
	period Period,
	createdBy uuid.UUID,
	today time.Time,
	now time.Time,
) (*Promotion, error) {
	if period.Start().Before(daterange.Day(today)) {
		return nil, ErrStartInPast
	}
	return &Promotion{
		id:         uuid.New(),
		propertyID: propertyID,
		discount:   discount,
		period:     period,
		active:     true,
		createdBy:  createdBy,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructPromotion(
	id, propertyID uuid.UUID,
	discount Discount,
	period Period,
	active bool,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Promotion {
	return &Promotion{
		id:         id,
		propertyID: propertyID,
		discount:   discount,
		period:     period,
		active:     active,
		createdBy:  createdBy,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Deactivate is the soft delete used both for cancellation and for overlap replacement.
func (p *Promotion) Deactivate(now time.Time) error {
	if !p.active {
		return ErrAlreadyInactive
	}
	p.active = false
	p.updatedAt = now
	return nil
}

// Status derives the lifecycle state; expiry is never stored.
func (p *Promotion) Status(today time.Time) Status {
	if !p.active {
		return StatusCancelled
	}
	if daterange.Day(today).After(p.period.End()) {
		return StatusExpired
	}
	return StatusActive
}

func (p *Promotion) AppliesOn(date time.Time) bool {
	return p.active && p.period.Contains(date)
}

func (p *Promotion) ID() uuid.UUID         { return p.id }
func (p *Promotion) PropertyID() uuid.UUID { return p.propertyID }
func (p *Promotion) Discount() Discount    { return p.discount }
func (p *Promotion) Period() Period        { return p.period }
func (p *Promotion) IsActive() bool        { return p.active }
func (p *Promotion) CreatedBy() uuid.UUID  { return p.createdBy }
func (p *Promotion) CreatedAt() time.Time  { return p.createdAt }
func (p *Promotion) UpdatedAt() time.Time  { return p.updatedAt }

// ActiveOn picks the promotion covering date. Active promotions never overlap, but if
// legacy data does, the larger discount wins.
func ActiveOn(promotions []*Promotion, date time.Time) *Promotion {
	var chosen *Promotion
	for _, p := range promotions {
		if !p.AppliesOn(date) {
			continue
		}
		if chosen == nil || p.discount.percentage.GreaterThan(chosen.discount.percentage) {
			chosen = p
		}
	}
	return chosen
}
