package commission

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyTitle       = errors.New("commission rule title is required")
	ErrRateOutOfRange   = errors.New("commission rate must be between 0 and 1")
	ErrNegativeFixedFee = errors.New("commission fixed amount cannot be negative")
)

type Rates struct {
	HostRate    decimal.Decimal
	HostFixed   decimal.Decimal
	ClientRate  decimal.Decimal
	ClientFixed decimal.Decimal
}

func (r Rates) Validate() error {
	one := decimal.NewFromInt(1)
	for _, rate := range []decimal.Decimal{r.HostRate, r.ClientRate} {
		if rate.IsNegative() || rate.GreaterThan(one) {
			return ErrRateOutOfRange
		}
	}
	if r.HostFixed.IsNegative() || r.ClientFixed.IsNegative() {
		return ErrNegativeFixedFee
	}
	return nil
}

// Rule is the platform take rate for one property type, or every type when propertyTypeID is nil.
type Rule struct {
	id             uuid.UUID
	title          string
	rates          Rates
	propertyTypeID *uuid.UUID
	active         bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewRule(title string, rates Rates, propertyTypeID *uuid.UUID, now time.Time) (*Rule, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return &Rule{
		id:             uuid.New(),
		title:          title,
		rates:          rates,
		propertyTypeID: propertyTypeID,
		active:         true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructRule(
	id uuid.UUID,
	title string,
	rates Rates,
	propertyTypeID *uuid.UUID,
	active bool,
	createdAt, updatedAt time.Time,
) *Rule {
	return &Rule{
		id:             id,
		title:          title,
		rates:          rates,
		propertyTypeID: propertyTypeID,
		active:         active,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Update replaces the editable fields; the scope of a rule never changes.
func (r *Rule) Update(title string, rates Rates, active bool, now time.Time) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if err := rates.Validate(); err != nil {
		return err
	}
	r.title = title
	r.rates = rates
	r.active = active
	r.updatedAt = now
	return nil
}

func (r *Rule) IsGlobal() bool { return r.propertyTypeID == nil }

func (r *Rule) ID() uuid.UUID              { return r.id }
func (r *Rule) Title() string              { return r.title }
func (r *Rule) Rates() Rates               { return r.rates }
func (r *Rule) PropertyTypeID() *uuid.UUID { return r.propertyTypeID }
func (r *Rule) IsActive() bool             { return r.active }
func (r *Rule) CreatedAt() time.Time       { return r.createdAt }
func (r *Rule) UpdatedAt() time.Time       { return r.updatedAt }

// Select returns the active rule for the property type, falling back to an active global rule.
// Within one scope the most recently updated active rule wins, ties broken by the higher id.
func Select(rules []*Rule, propertyTypeID *uuid.UUID) (*Rule, bool) {
	var typed, global *Rule
	for _, r := range rules {
		if !r.active {
			continue
		}
		switch {
		case r.propertyTypeID == nil:
			global = newer(global, r)
		case propertyTypeID != nil && *r.propertyTypeID == *propertyTypeID:
			typed = newer(typed, r)
		}
	}
	if typed != nil {
		return typed, true
	}
	return global, global != nil
}

func newer(current, candidate *Rule) *Rule {
	if current == nil || candidate.updatedAt.After(current.updatedAt) {
		return candidate
	}
	if candidate.updatedAt.Equal(current.updatedAt) && candidate.id.String() > current.id.String() {
		return candidate
	}
	return current
}
