package shared

import (
	"context"

	"hosteed/internal/domain/availability"
	"hosteed/internal/domain/commission"
	"hosteed/internal/domain/extra"
	"hosteed/internal/domain/promotion"
	"hosteed/internal/domain/property"
	"hosteed/internal/domain/reservation"
	"hosteed/internal/domain/shared/daterange"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one serializable transaction, retried once on serialization failure or deadlock
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads reads outside any transaction, for validation before Within
	CommandReads() CommandReads
}

// Tx exposes repositories bound to the running transaction.
type Tx interface {
	// LockProperty takes a transaction-scoped advisory lock serializing writers of one property
	LockProperty(ctx context.Context, propertyID uuid.UUID) error
	Blackouts() BlackoutRepository
	Promotions() PromotionRepository
	CommissionRules() CommissionRuleRepository
	Extras() ExtraRepository
	Outbox() OutboxRepository
	Reads() CommandReads
}

type CommandReads interface {
	PropertyByID(ctx context.Context, id uuid.UUID) (*property.Property, error)
	BlockingReservations(ctx context.Context, propertyID uuid.UUID, within daterange.DateRange) ([]*reservation.Reservation, error)
	BlackoutsOverlapping(ctx context.Context, propertyID uuid.UUID, within daterange.DateRange) ([]*availability.BlackoutPeriod, error)
	BlackoutByID(ctx context.Context, id uuid.UUID) (*availability.BlackoutPeriod, error)
	ActivePromotionsOverlapping(ctx context.Context, propertyID uuid.UUID, period promotion.Period) ([]*promotion.Promotion, error)
	PromotionByID(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error)
	CommissionRuleByID(ctx context.Context, id uuid.UUID) (*commission.Rule, error)
	ActiveCommissionRules(ctx context.Context, propertyTypeID *uuid.UUID) ([]*commission.Rule, error)
	ExtraByID(ctx context.Context, id uuid.UUID) (*extra.Extra, error)
}

type BlackoutRepository interface {
	Create(ctx context.Context, b *availability.BlackoutPeriod) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PromotionRepository interface {
	Create(ctx context.Context, p *promotion.Promotion) error
	UpdateActive(ctx context.Context, p *promotion.Promotion) error
}

type CommissionRuleRepository interface {
	Create(ctx context.Context, r *commission.Rule) error
	Update(ctx context.Context, r *commission.Rule) error
}

type ExtraRepository interface {
	Create(ctx context.Context, e *extra.Extra) error
	AttachToProperty(ctx context.Context, propertyID, extraID uuid.UUID) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, msg OutboxMessage) error
}
