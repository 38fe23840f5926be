package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const enqueueOutboxEvent = `
INSERT INTO outbox_events (id, topic, key, payload, created_at, next_attempt_at)
VALUES ($1, $2, $3, $4, $5, $5)`

type EnqueueOutboxEventParams struct {
	ID        uuid.UUID
	Topic     string
	Key       string
	Payload   []byte
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) EnqueueOutboxEvent(ctx context.Context, db DBTX, arg EnqueueOutboxEventParams) error {
	_, err := db.Exec(ctx, enqueueOutboxEvent, arg.ID, arg.Topic, arg.Key, arg.Payload, arg.CreatedAt)
	return err
}

// Rows locked by another relay are skipped rather than waited on.
const claimOutboxEvents = `
SELECT id, topic, key, payload, created_at, published_at, attempts, last_error, next_attempt_at
FROM outbox_events
WHERE published_at IS NULL
  AND next_attempt_at <= $1
ORDER BY created_at, id
LIMIT $2
FOR UPDATE SKIP LOCKED`

type ClaimOutboxEventsParams struct {
	Now   pgtype.Timestamptz
	Limit int32
}

func (q *Queries) ClaimOutboxEvents(ctx context.Context, db DBTX, arg ClaimOutboxEventsParams) ([]OutboxEvent, error) {
	rows, err := db.Query(ctx, claimOutboxEvents, arg.Now, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(r pgx.Row) (OutboxEvent, error) {
		var i OutboxEvent
		err := r.Scan(
			&i.ID,
			&i.Topic,
			&i.Key,
			&i.Payload,
			&i.CreatedAt,
			&i.PublishedAt,
			&i.Attempts,
			&i.LastError,
			&i.NextAttemptAt,
		)
		return i, err
	})
}

const markOutboxEventSent = `UPDATE outbox_events SET published_at = $2, last_error = NULL WHERE id = $1`

func (q *Queries) MarkOutboxEventSent(ctx context.Context, db DBTX, id uuid.UUID, publishedAt pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, markOutboxEventSent, id, publishedAt)
	return err
}

const markOutboxEventFailed = `
UPDATE outbox_events
SET attempts = attempts + 1,
    last_error = $2,
    next_attempt_at = $3
WHERE id = $1`

type MarkOutboxEventFailedParams struct {
	ID            uuid.UUID
	LastError     pgtype.Text
	NextAttemptAt pgtype.Timestamptz
}

func (q *Queries) MarkOutboxEventFailed(ctx context.Context, db DBTX, arg MarkOutboxEventFailedParams) error {
	_, err := db.Exec(ctx, markOutboxEventFailed, arg.ID, arg.LastError, arg.NextAttemptAt)
	return err
}
