package commands

import (
	"context"
	"encoding/json"
	"time"

	"hosteed/internal/usecase/shared"

	"github.com/google/uuid"
)

// CacheInvalidator drops cached read models after a write commits.
type CacheInvalidator interface {
	InvalidatePropertyExtras(ctx context.Context, propertyID uuid.UUID) error
	InvalidateCommissionRules(ctx context.Context) error
}

type NoopInvalidator struct{}

func (NoopInvalidator) InvalidatePropertyExtras(context.Context, uuid.UUID) error { return nil }
func (NoopInvalidator) InvalidateCommissionRules(context.Context) error           { return nil }

type BlackoutEvent struct {
	BlackoutID uuid.UUID `json:"blackout_id"`
	PropertyID uuid.UUID `json:"property_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	ActorID    uuid.UUID `json:"actor_id"`
}

type PromotionEvent struct {
	PromotionID        uuid.UUID  `json:"promotion_id"`
	PropertyID         uuid.UUID  `json:"property_id"`
	DiscountPercentage string     `json:"discount_percentage"`
	StartDate          string     `json:"start_date"`
	EndDate            string     `json:"end_date"`
	ActorID            uuid.UUID  `json:"actor_id"`
	ReplacedBy         *uuid.UUID `json:"replaced_by,omitempty"`
}

func enqueue(ctx context.Context, tx shared.Tx, topic string, key uuid.UUID, payload any, now time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return tx.Outbox().Enqueue(ctx, shared.OutboxMessage{
		ID:        uuid.New(),
		Topic:     topic,
		Key:       key.String(),
		Payload:   body,
		CreatedAt: now,
	})
}
