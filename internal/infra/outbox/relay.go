// Package outbox publishes rows written by the command side to Kafka, at least once.
package outbox

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hosteed/internal/pkg/clock"
)

var ErrRelayNotConfigured = errors.New("outbox: relay missing dependencies")

type Producer interface {
	Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error
}

type EventStore interface {
	WithClaimed(ctx context.Context, now time.Time, limit int32, fn func(ctx context.Context, b Batch) error) error
}

// parkDelay holds back events that exhausted their attempts until an operator intervenes.
const parkDelay = 24 * time.Hour

var defaultBackoff = []time.Duration{
	time.Second,
	5 * time.Second,
	30 * time.Second,
	2 * time.Minute,
	10 * time.Minute,
}

type Relay struct {
	Store       EventStore
	Producer    Producer
	Clock       clock.Clock
	Interval    time.Duration
	BatchSize   int32
	MaxAttempts int
	Backoff     []time.Duration
	Logger      *slog.Logger
}

func (r *Relay) Run(ctx context.Context) error {
	if r.Store == nil || r.Producer == nil {
		return ErrRelayNotConfigured
	}
	ticker := time.NewTicker(r.interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := r.ProcessOnce(ctx); err != nil && ctx.Err() == nil {
				r.logger().Error("outbox relay iteration failed", "error", err.Error())
			}
		}
	}
}

// ProcessOnce publishes one batch and returns how many events reached the broker.
func (r *Relay) ProcessOnce(ctx context.Context) (int, error) {
	sent := 0
	now := r.now()
	err := r.Store.WithClaimed(ctx, now, r.batchSize(), func(ctx context.Context, b Batch) error {
		for _, evt := range b.Events() {
			headers := map[string]string{
				"content-type": "application/json",
				"event-id":     evt.ID.String(),
				"event-type":   evt.Topic,
				"occurred-at":  evt.CreatedAt.UTC().Format(time.RFC3339Nano),
			}
			if err := r.Producer.Publish(ctx, evt.Topic, evt.Key, evt.Payload, headers); err != nil {
				next, parked := r.nextAttempt(now, evt.Attempts)
				if parked {
					r.logger().Error("outbox event parked after max attempts",
						"event_id", evt.ID.String(), "topic", evt.Topic, "attempts", evt.Attempts+1, "error", err.Error())
				} else {
					r.logger().Warn("outbox publish failed",
						"event_id", evt.ID.String(), "topic", evt.Topic, "attempt", evt.Attempts+1, "error", err.Error())
				}
				if err := b.MarkFailed(ctx, evt.ID, next, err.Error()); err != nil {
					return err
				}
				continue
			}
			if err := b.MarkSent(ctx, evt.ID, r.now()); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	return sent, err
}

func (r *Relay) nextAttempt(now time.Time, attempts int) (time.Time, bool) {
	if r.MaxAttempts > 0 && attempts+1 >= r.MaxAttempts {
		return now.Add(parkDelay), true
	}
	backoff := r.Backoff
	if len(backoff) == 0 {
		backoff = defaultBackoff
	}
	if attempts < len(backoff) {
		return now.Add(backoff[attempts]), false
	}
	return now.Add(backoff[len(backoff)-1]), false
}

func (r *Relay) now() time.Time {
	if r.Clock == nil {
		return time.Now()
	}
	return r.Clock.Now()
}

func (r *Relay) interval() time.Duration {
	if r.Interval <= 0 {
		return 2 * time.Second
	}
	return r.Interval
}

func (r *Relay) batchSize() int32 {
	if r.BatchSize <= 0 {
		return 100
	}
	return r.BatchSize
}

func (r *Relay) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}
