package repository

import (
	"context"

	"hosteed/internal/infra"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/pkg/pgconv"
	"hosteed/internal/usecase/shared"
)

//go:generate mockgen -source=outbox.go -destination=../../../tests/mock/repository/outbox.go -package=repositorymock
type OutboxWriteQueries interface {
	EnqueueOutboxEvent(ctx context.Context, db pgq.DBTX, arg pgq.EnqueueOutboxEventParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      pgq.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db pgq.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, msg shared.OutboxMessage) error {
	params := pgq.EnqueueOutboxEventParams{
		ID:        msg.ID,
		Topic:     msg.Topic,
		Key:       msg.Key,
		Payload:   msg.Payload,
		CreatedAt: pgconv.TimeToPgtype(msg.CreatedAt),
	}
	if err := r.queries.EnqueueOutboxEvent(ctx, r.db, params); err != nil {
		return infra.WrapPgErr("failed to enqueue outbox event", err)
	}
	return nil
}
