package commands

import (
	"context"
	"log/slog"

	"hosteed/internal/domain/extra"
	"hosteed/internal/domain/user"
	"hosteed/internal/infra"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrExtraNotFound    = errs.New("extra not found")
	ErrGlobalExtraAdmin = errs.New("only admins can create global extras")
	ErrExtraNotUsable   = errs.New("extra belongs to another host")
)

type CreateExtraInput struct {
	Name        string
	Description *string
	PriceEUR    decimal.Decimal
	PriceMGA    decimal.Decimal
	PricingType extra.PricingType
	Global      bool
}

//go:generate mockgen -source=extra.go -destination=../../../tests/mock/commands/extra.go -package=commandsmock
type ExtraCommands interface {
	Create(ctx context.Context, in CreateExtraInput, actor user.Actor) (*extra.Extra, error)
	AttachToProperty(ctx context.Context, propertyID, extraID uuid.UUID, actor user.Actor) error
}

type extraCommandsImpl struct {
	uow         shared.UnitOfWork
	invalidator CacheInvalidator
}

func NewExtraCommands(uow shared.UnitOfWork, invalidator CacheInvalidator) ExtraCommands {
	return &extraCommandsImpl{uow: uow, invalidator: invalidator}
}

func (uc *extraCommandsImpl) Create(ctx context.Context, in CreateExtraInput, actor user.Actor) (*extra.Extra, error) {
	var owner *uuid.UUID
	switch {
	case in.Global && !actor.IsAdmin():
		return nil, errs.Forbidden(ErrGlobalExtraAdmin)
	case !in.Global:
		if !actor.Role.AtLeast(user.RoleHost) {
			return nil, errs.Forbidden(ErrNotPropertyOwner)
		}
		id := actor.ID
		owner = &id
	}

	e, err := extra.NewExtra(in.Name, in.Description, in.PriceEUR, in.PriceMGA, in.PricingType, owner)
	if err != nil {
		return nil, errs.Validation(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Extras().Create(ctx, e)
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *extraCommandsImpl) AttachToProperty(ctx context.Context, propertyID, extraID uuid.UUID, actor user.Actor) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		prop, err := loadManagedProperty(ctx, tx.Reads(), propertyID, actor)
		if err != nil {
			return err
		}
		e, err := tx.Reads().ExtraByID(ctx, extraID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.NotFound(ErrExtraNotFound)
			}
			return err
		}
		if !e.IsGlobal() && *e.OwnerID() != prop.HostID() {
			return errs.Forbidden(ErrExtraNotUsable)
		}
		return tx.Extras().AttachToProperty(ctx, prop.ID(), e.ID())
	})
	if err != nil {
		return err
	}

	if err := uc.invalidator.InvalidatePropertyExtras(ctx, propertyID); err != nil {
		slog.WarnContext(ctx, "failed to invalidate extras cache", "property_id", propertyID, "error", err.Error())
	}
	return nil
}
