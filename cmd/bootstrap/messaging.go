package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"hosteed/internal/infra/broker/kafka"
	"hosteed/internal/infra/outbox"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/pkg/clock"
	"hosteed/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Invoke(StartOutboxRelay),
)

// StartOutboxRelay publishes committed outbox rows to Kafka while the app runs.
// With KAFKA_ENABLED=false rows accumulate and are relayed once it is switched on.
func StartOutboxRelay(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, q *pgq.Queries, clk clock.Clock, logger *slog.Logger) {
	if !cfg.Kafka.Enabled {
		logger.Info("outbox relay disabled")
		return
	}

	var (
		producer *kafka.Producer
		cancel   context.CancelFunc
		wg       sync.WaitGroup
	)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			p, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.ClientID)
			if err != nil {
				return err
			}
			producer = p

			relay := &outbox.Relay{
				Store:       outbox.NewStore(pool, q),
				Producer:    producer,
				Clock:       clk,
				Interval:    cfg.Kafka.PollInterval,
				BatchSize:   cfg.Kafka.BatchSize,
				MaxAttempts: int(cfg.Kafka.MaxAttempts),
				Logger:      logger,
			}

			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := relay.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("outbox relay stopped", "error", err.Error())
				}
			}()
			logger.Info("outbox relay started", "brokers", cfg.Kafka.Brokers, "interval", cfg.Kafka.PollInterval)
			return nil
		},
		OnStop: func(_ context.Context) error {
			if cancel != nil {
				cancel()
			}
			wg.Wait()
			if producer != nil {
				return producer.Close()
			}
			return nil
		},
	})
}
