package commands

import (
	"context"
	"log/slog"
	"time"

	"hosteed/internal/domain/availability"
	"hosteed/internal/domain/shared/daterange"
	"hosteed/internal/domain/user"
	"hosteed/internal/infra"
	"hosteed/internal/pkg/clock"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound = errs.New("property not found")
	ErrBlackoutNotFound = errs.New("blackout period not found")
	ErrNotPropertyOwner = errs.New("only the property host or an admin can do this")
)

type CreateBlackoutInput struct {
	PropertyID  uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	Title       string
	Description *string
}

//go:generate mockgen -source=blackout.go -destination=../../../tests/mock/commands/blackout.go -package=commandsmock
type BlackoutCommands interface {
	Create(ctx context.Context, in CreateBlackoutInput, actor user.Actor) (*availability.BlackoutPeriod, error)
	Delete(ctx context.Context, blackoutID uuid.UUID, actor user.Actor) error
}

type blackoutCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewBlackoutCommands(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) BlackoutCommands {
	return &blackoutCommandsImpl{uow: uow, clock: clk, loc: loc}
}

func (uc *blackoutCommandsImpl) Create(
	ctx context.Context,
	in CreateBlackoutInput,
	actor user.Actor,
) (*availability.BlackoutPeriod, error) {
	period, err := daterange.New(in.StartDate, in.EndDate)
	if err != nil {
		return nil, errs.Validation(err)
	}
	if err := availability.ValidateRequest(clock.Today(uc.clock, uc.loc), period); err != nil {
		return nil, errs.Validation(err)
	}

	var created *availability.BlackoutPeriod
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := authorizeForProperty(ctx, tx, in.PropertyID, actor); err != nil {
			return err
		}
		if err := tx.LockProperty(ctx, in.PropertyID); err != nil {
			return err
		}

		reservations, err := tx.Reads().BlockingReservations(ctx, in.PropertyID, period)
		if err != nil {
			return err
		}
		blackouts, err := tx.Reads().BlackoutsOverlapping(ctx, in.PropertyID, period)
		if err != nil {
			return err
		}
		if conflict := availability.FindConflict(period, reservations, blackouts); conflict != nil {
			return errs.Conflict(conflict)
		}

		now := uc.clock.Now()
		b, err := availability.NewBlackoutPeriod(in.PropertyID, period, in.Title, in.Description, actor.ID, now)
		if err != nil {
			return errs.Validation(err)
		}
		if err := tx.Blackouts().Create(ctx, b); err != nil {
			return err
		}
		created = b

		return enqueue(ctx, tx, shared.TopicBlackoutCreated, b.PropertyID(), blackoutEvent(b, actor), now)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "blackout period created",
		"blackout_id", created.ID(),
		"property_id", created.PropertyID(),
		"start_date", period.Start.Format(time.DateOnly),
		"end_date", period.End.Format(time.DateOnly))
	return created, nil
}

func (uc *blackoutCommandsImpl) Delete(ctx context.Context, blackoutID uuid.UUID, actor user.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BlackoutByID(ctx, blackoutID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.NotFound(ErrBlackoutNotFound)
			}
			return err
		}
		if err := authorizeForProperty(ctx, tx, b.PropertyID(), actor); err != nil {
			return err
		}
		if err := tx.LockProperty(ctx, b.PropertyID()); err != nil {
			return err
		}
		if err := tx.Blackouts().Delete(ctx, b.ID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.NotFound(ErrBlackoutNotFound)
			}
			return err
		}
		return enqueue(ctx, tx, shared.TopicBlackoutDeleted, b.PropertyID(), blackoutEvent(b, actor), uc.clock.Now())
	})
}

func blackoutEvent(b *availability.BlackoutPeriod, actor user.Actor) BlackoutEvent {
	return BlackoutEvent{
		BlackoutID: b.ID(),
		PropertyID: b.PropertyID(),
		StartDate:  b.Period().Start.Format(time.DateOnly),
		EndDate:    b.Period().End.Format(time.DateOnly),
		ActorID:    actor.ID,
	}
}
