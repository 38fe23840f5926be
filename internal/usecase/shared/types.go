package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	TopicBlackoutCreated      = "availability.blackout_created"
	TopicBlackoutDeleted      = "availability.blackout_deleted"
	TopicPromotionActivated   = "promotion.activated"
	TopicPromotionDeactivated = "promotion.deactivated"
	TopicPromotionCancelled   = "promotion.cancelled"
)

// OutboxMessage is written in the same transaction as the change it announces.
type OutboxMessage struct {
	ID        uuid.UUID
	Topic     string
	Key       string
	Payload   []byte
	CreatedAt time.Time
}
