package cache

import (
	"context"

	"hosteed/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Invalidator drops entries after commits; it implements commands.CacheInvalidator.
type Invalidator struct {
	client redis.Cmdable
}

func NewInvalidator(client redis.Cmdable) *Invalidator {
	return &Invalidator{client: client}
}

func (i *Invalidator) InvalidatePropertyExtras(ctx context.Context, propertyID uuid.UUID) error {
	return i.del(ctx, propertyExtrasKey(propertyID.String()))
}

func (i *Invalidator) InvalidateCommissionRules(ctx context.Context) error {
	return i.del(ctx, commissionRulesKey())
}

func (i *Invalidator) del(ctx context.Context, keys ...string) error {
	if err := i.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrapf(err, "invalidate %v", keys)
	}
	return nil
}
