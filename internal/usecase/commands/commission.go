package commands

import (
	"context"
	"log/slog"

	"hosteed/internal/domain/commission"
	"hosteed/internal/domain/user"
	"hosteed/internal/infra"
	"hosteed/internal/pkg/clock"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrAdminOnly = errs.New("only admins can manage commission rules")

type CommissionRuleInput struct {
	Title          string
	Rates          commission.Rates
	PropertyTypeID *uuid.UUID
	Active         bool
}

//go:generate mockgen -source=commission.go -destination=../../../tests/mock/commands/commission.go -package=commandsmock
type CommissionRuleCommands interface {
	Create(ctx context.Context, in CommissionRuleInput, actor user.Actor) (*commission.Rule, error)
	Update(ctx context.Context, ruleID uuid.UUID, in CommissionRuleInput, actor user.Actor) (*commission.Rule, error)
}

type commissionRuleCommandsImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	invalidator CacheInvalidator
}

func NewCommissionRuleCommands(uow shared.UnitOfWork, clk clock.Clock, invalidator CacheInvalidator) CommissionRuleCommands {
	return &commissionRuleCommandsImpl{uow: uow, clock: clk, invalidator: invalidator}
}

func (uc *commissionRuleCommandsImpl) Create(
	ctx context.Context,
	in CommissionRuleInput,
	actor user.Actor,
) (*commission.Rule, error) {
	if !actor.IsAdmin() {
		return nil, errs.Forbidden(ErrAdminOnly)
	}
	rule, err := commission.NewRule(in.Title, in.Rates, in.PropertyTypeID, uc.clock.Now())
	if err != nil {
		return nil, errs.Validation(err)
	}
	if !in.Active {
		if err := rule.Update(in.Title, in.Rates, false, uc.clock.Now()); err != nil {
			return nil, errs.Validation(err)
		}
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.CommissionRules().Create(ctx, rule)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	return rule, nil
}

func (uc *commissionRuleCommandsImpl) Update(
	ctx context.Context,
	ruleID uuid.UUID,
	in CommissionRuleInput,
	actor user.Actor,
) (*commission.Rule, error) {
	if !actor.IsAdmin() {
		return nil, errs.Forbidden(ErrAdminOnly)
	}
	if err := in.Rates.Validate(); err != nil {
		return nil, errs.Validation(err)
	}

	var updated *commission.Rule
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rule, err := tx.Reads().CommissionRuleByID(ctx, ruleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.NotFound(ErrCommissionRuleNotFound)
			}
			return err
		}
		if err := rule.Update(in.Title, in.Rates, in.Active, uc.clock.Now()); err != nil {
			return errs.Validation(err)
		}
		if err := tx.CommissionRules().Update(ctx, rule); err != nil {
			return err
		}
		updated = rule
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx)
	return updated, nil
}

func (uc *commissionRuleCommandsImpl) invalidate(ctx context.Context) {
	if err := uc.invalidator.InvalidateCommissionRules(ctx); err != nil {
		slog.WarnContext(ctx, "failed to invalidate commission rule cache", "error", err.Error())
	}
}
