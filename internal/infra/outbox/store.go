package outbox

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hosteed/internal/infra"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Event struct {
	ID        uuid.UUID
	Topic     string
	Key       string
	Payload   []byte
	CreatedAt time.Time
	Attempts  int
}

// Batch is a set of claimed events; rows stay locked until the surrounding transaction ends.
type Batch interface {
	Events() []Event
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, nextAttempt time.Time, reason string) error
}

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Store struct {
	pool TxBeginner
	q    *pgq.Queries
}

func NewStore(pool TxBeginner, q *pgq.Queries) *Store {
	return &Store{pool: pool, q: q}
}

// WithClaimed locks up to limit due events with SKIP LOCKED, hands them to fn and commits
// the marks fn made. Concurrent relays never see the same row.
func (s *Store) WithClaimed(ctx context.Context, now time.Time, limit int32, fn func(ctx context.Context, b Batch) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return infra.WrapPgErr("failed to begin outbox transaction", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("outbox rollback failed", "error", rbErr.Error())
		}
	}()

	rows, err := s.q.ClaimOutboxEvents(ctx, tx, pgq.ClaimOutboxEventsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return infra.WrapPgErr("failed to claim outbox events", err)
	}
	if len(rows) == 0 {
		return nil
	}

	events := make([]Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, Event{
			ID:        row.ID,
			Topic:     row.Topic,
			Key:       row.Key,
			Payload:   row.Payload,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			Attempts:  int(row.Attempts),
		})
	}
	if err := fn(ctx, &pgBatch{q: s.q, tx: tx, events: events}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return infra.WrapPgErr("failed to commit outbox batch", err)
	}
	return nil
}

type pgBatch struct {
	q      *pgq.Queries
	tx     pgx.Tx
	events []Event
}

func (b *pgBatch) Events() []Event { return b.events }

func (b *pgBatch) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	if err := b.q.MarkOutboxEventSent(ctx, b.tx, id, pgconv.TimeToPgtype(at)); err != nil {
		return infra.WrapPgErr("failed to mark outbox event sent", err)
	}
	return nil
}

func (b *pgBatch) MarkFailed(ctx context.Context, id uuid.UUID, nextAttempt time.Time, reason string) error {
	err := b.q.MarkOutboxEventFailed(ctx, b.tx, pgq.MarkOutboxEventFailedParams{
		ID:            id,
		LastError:     pgconv.StringToPgtype(reason),
		NextAttemptAt: pgconv.TimeToPgtype(nextAttempt),
	})
	if err != nil {
		return infra.WrapPgErr("failed to mark outbox event failed", err)
	}
	return nil
}
