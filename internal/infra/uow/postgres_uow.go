package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"hosteed/internal/domain/availability"
	"hosteed/internal/domain/commission"
	"hosteed/internal/domain/extra"
	"hosteed/internal/domain/promotion"
	"hosteed/internal/domain/property"
	"hosteed/internal/domain/reservation"
	"hosteed/internal/domain/shared/daterange"
	"hosteed/internal/infra"
	"hosteed/internal/infra/pgq"
	"hosteed/internal/infra/readstore"
	"hosteed/internal/infra/repository"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries = 1
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *pgq.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgq.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Within runs fn under SERIALIZABLE so check-then-insert sequences cannot interleave.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	base := 50 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

// IsRetryExhausted reports a write that kept losing serialization races.
func IsRetryExhausted(err error) bool {
	return errs.Is(err, errMaxRetriesExceeded)
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to 63 bits
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

// advisoryKey folds a property id into the bigint key space of pg_advisory_xact_lock.
func advisoryKey(id uuid.UUID) int64 {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])
	// #nosec G115 -- any bit pattern is a valid key
	return int64(hi ^ lo)
}

type pgTx struct {
	dbtx pgq.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	blackoutRepo   shared.BlackoutRepository
	promotionRepo  shared.PromotionRepository
	commissionRepo shared.CommissionRuleRepository
	extraRepo      shared.ExtraRepository
	outboxRepo     shared.OutboxRepository
	commandReads   shared.CommandReads
}

func (t *pgTx) LockProperty(ctx context.Context, propertyID uuid.UUID) error {
	if err := t.uow.q.LockProperty(ctx, t.dbtx, advisoryKey(propertyID)); err != nil {
		return infra.WrapPgErr("failed to lock property", err)
	}
	return nil
}

func (t *pgTx) Blackouts() shared.BlackoutRepository {
	if t.blackoutRepo == nil {
		t.blackoutRepo = repository.NewBlackoutRepository(t.uow.q, t.dbtx)
	}
	return t.blackoutRepo
}

func (t *pgTx) Promotions() shared.PromotionRepository {
	if t.promotionRepo == nil {
		t.promotionRepo = repository.NewPromotionRepository(t.uow.q, t.dbtx)
	}
	return t.promotionRepo
}

func (t *pgTx) CommissionRules() shared.CommissionRuleRepository {
	if t.commissionRepo == nil {
		t.commissionRepo = repository.NewCommissionRuleRepository(t.uow.q, t.dbtx)
	}
	return t.commissionRepo
}

func (t *pgTx) Extras() shared.ExtraRepository {
	if t.extraRepo == nil {
		t.extraRepo = repository.NewExtraRepository(t.uow.q, t.dbtx)
	}
	return t.extraRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.uow.q, t.dbtx)
	}
	return t.outboxRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.uow.q, t.dbtx)
	}
	return t.commandReads
}

// commandReads reads through the same executor as the writes so a transaction sees its own rows.
type commandReads struct {
	properties  *readstore.PropertyReadStore
	calendar    *readstore.CalendarReadStore
	promotions  *readstore.PromotionReadStore
	commissions *readstore.CommissionReadStore
	extras      *readstore.ExtraReadStore
}

func newCommandReads(q *pgq.Queries, db pgq.DBTX) *commandReads {
	return &commandReads{
		properties:  readstore.NewPropertyReadStore(q, db),
		calendar:    readstore.NewCalendarReadStore(q, db),
		promotions:  readstore.NewPromotionReadStore(q, db),
		commissions: readstore.NewCommissionReadStore(q, db),
		extras:      readstore.NewExtraReadStore(q, db),
	}
}

func (r *commandReads) PropertyByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	return r.properties.FindByID(ctx, id)
}

func (r *commandReads) BlockingReservations(ctx context.Context, propertyID uuid.UUID, within daterange.DateRange) ([]*reservation.Reservation, error) {
	return r.calendar.BlockingReservations(ctx, propertyID, within)
}

func (r *commandReads) BlackoutsOverlapping(ctx context.Context, propertyID uuid.UUID, within daterange.DateRange) ([]*availability.BlackoutPeriod, error) {
	return r.calendar.Blackouts(ctx, propertyID, within)
}

func (r *commandReads) BlackoutByID(ctx context.Context, id uuid.UUID) (*availability.BlackoutPeriod, error) {
	return r.calendar.BlackoutByID(ctx, id)
}

func (r *commandReads) ActivePromotionsOverlapping(ctx context.Context, propertyID uuid.UUID, period promotion.Period) ([]*promotion.Promotion, error) {
	return r.promotions.ActiveOverlapping(ctx, propertyID, period)
}

func (r *commandReads) PromotionByID(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error) {
	return r.promotions.FindByID(ctx, id)
}

func (r *commandReads) CommissionRuleByID(ctx context.Context, id uuid.UUID) (*commission.Rule, error) {
	return r.commissions.FindByID(ctx, id)
}

func (r *commandReads) ActiveCommissionRules(ctx context.Context, propertyTypeID *uuid.UUID) ([]*commission.Rule, error) {
	return r.commissions.ActiveRulesFor(ctx, propertyTypeID)
}

func (r *commandReads) ExtraByID(ctx context.Context, id uuid.UUID) (*extra.Extra, error) {
	return r.extras.FindByID(ctx, id)
}
