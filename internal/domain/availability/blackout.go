package availability

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"hosteed/internal/domain/shared/daterange"

	"github.com/google/uuid"
)

const maxTitleLength = 200

var (
	ErrEmptyTitle   = errors.New("blackout title is required")
	ErrTitleTooLong = errors.New("blackout title must be at most 200 characters")
)

// BlackoutPeriod blocks [Start, End) of a property outside of any reservation.
type BlackoutPeriod struct {
	id          uuid.UUID
	propertyID  uuid.UUID
	period      daterange.DateRange
	title       string
	description *string
	createdBy   uuid.UUID
	createdAt   time.Time
}

func NewBlackoutPeriod(
	propertyID uuid.UUID,
	period daterange.DateRange,
	title string,
	description *string,
	createdBy uuid.UUID,
	now time.Time,
) (*BlackoutPeriod, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return nil, ErrTitleTooLong
	}
	if description != nil && strings.TrimSpace(*description) == "" {
		description = nil
	}
	return &BlackoutPeriod{
		id:          uuid.New(),
		propertyID:  propertyID,
		period:      period,
		title:       title,
		description: description,
		createdBy:   createdBy,
		createdAt:   now,
	}, nil
}

func ReconstructBlackoutPeriod(
	id, propertyID uuid.UUID,
	period daterange.DateRange,
	title string,
	description *string,
	createdBy uuid.UUID,
	createdAt time.Time,
) *BlackoutPeriod {
	return &BlackoutPeriod{
		id:          id,
		propertyID:  propertyID,
		period:      period,
		title:       title,
		description: description,
		createdBy:   createdBy,
		createdAt:   createdAt,
	}
}

func (b *BlackoutPeriod) ID() uuid.UUID               { return b.id }
func (b *BlackoutPeriod) PropertyID() uuid.UUID       { return b.propertyID }
func (b *BlackoutPeriod) Period() daterange.DateRange { return b.period }
func (b *BlackoutPeriod) Title() string               { return b.title }
func (b *BlackoutPeriod) Description() *string        { return b.description }
func (b *BlackoutPeriod) CreatedBy() uuid.UUID        { return b.createdBy }
func (b *BlackoutPeriod) CreatedAt() time.Time        { return b.createdAt }
