package queries

import (
	"context"
	"time"

	"hosteed/internal/domain/availability"
	"hosteed/internal/domain/commission"
	"hosteed/internal/domain/extra"
	"hosteed/internal/domain/geo"
	"hosteed/internal/domain/promotion"
	"hosteed/internal/domain/property"
	"hosteed/internal/domain/reservation"
	"hosteed/internal/domain/shared/daterange"

	"github.com/google/uuid"
)

type PropertyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*property.Property, error)
	FindInBoundingBox(ctx context.Context, box geo.BoundingBox) ([]*property.Property, error)
	SpecialPrices(ctx context.Context, propertyID uuid.UUID, within daterange.DateRange) ([]*property.SpecialPrice, error)
}

type ExtraReadStore interface {
	ListForProperty(ctx context.Context, propertyID uuid.UUID) ([]*extra.Extra, error)
}

type CalendarReadStore interface {
	BlockingReservations(ctx context.Context, propertyID uuid.UUID, within daterange.DateRange) ([]*reservation.Reservation, error)
	Blackouts(ctx context.Context, propertyID uuid.UUID, within daterange.DateRange) ([]*availability.BlackoutPeriod, error)
}

type PromotionReadStore interface {
	ListByPropertyFirstPage(ctx context.Context, propertyID uuid.UUID, limit int32) ([]*promotion.Promotion, error)
	ListByPropertyKeyset(ctx context.Context, propertyID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*promotion.Promotion, error)
	ActiveCovering(ctx context.Context, propertyID uuid.UUID, within daterange.DateRange) ([]*promotion.Promotion, error)
}

type CommissionReadStore interface {
	ActiveRules(ctx context.Context) ([]*commission.Rule, error)
}
