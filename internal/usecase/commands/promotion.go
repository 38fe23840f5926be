package commands

import (
	"context"
	"log/slog"
	"time"

	"hosteed/internal/domain/commission"
	"hosteed/internal/domain/promotion"
	"hosteed/internal/domain/property"
	"hosteed/internal/domain/user"
	"hosteed/internal/infra"
	"hosteed/internal/pkg/clock"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPromotionNotFound      = errs.New("promotion not found")
	ErrCommissionRuleNotFound = errs.New("no active commission rule applies to this property")
	ErrCommissionViolated     = errs.New("discount would make the commission or host payout negative")
	ErrPromotionInactive      = errs.New("promotion is already inactive")
)

type CreatePromotionInput struct {
	PropertyID         uuid.UUID
	DiscountPercentage decimal.Decimal
	StartDate          time.Time
	EndDate            time.Time
}

type ConfirmOverlapResult struct {
	Promotion   *promotion.Promotion
	Deactivated []*promotion.Promotion
}

//go:generate mockgen -source=promotion.go -destination=../../../tests/mock/commands/promotion.go -package=commandsmock
type PromotionCommands interface {
	// Create fails with a conflict carrying *promotion.OverlapError when active promotions overlap
	Create(ctx context.Context, in CreatePromotionInput, actor user.Actor) (*promotion.Promotion, error)
	// ConfirmOverlap deactivates the listed overlapping promotions and activates the new one atomically
	ConfirmOverlap(ctx context.Context, in CreatePromotionInput, deactivateIDs []uuid.UUID, actor user.Actor) (*ConfirmOverlapResult, error)
	Cancel(ctx context.Context, promotionID uuid.UUID, actor user.Actor) error
}

type promotionCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewPromotionCommands(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) PromotionCommands {
	return &promotionCommandsImpl{uow: uow, clock: clk, loc: loc}
}

func (uc *promotionCommandsImpl) Create(
	ctx context.Context,
	in CreatePromotionInput,
	actor user.Actor,
) (*promotion.Promotion, error) {
	result, err := uc.activate(ctx, in, nil, false, actor)
	if err != nil {
		return nil, err
	}
	return result.Promotion, nil
}

func (uc *promotionCommandsImpl) ConfirmOverlap(
	ctx context.Context,
	in CreatePromotionInput,
	deactivateIDs []uuid.UUID,
	actor user.Actor,
) (*ConfirmOverlapResult, error) {
	return uc.activate(ctx, in, deactivateIDs, true, actor)
}

func (uc *promotionCommandsImpl) activate(
	ctx context.Context,
	in CreatePromotionInput,
	deactivateIDs []uuid.UUID,
	confirmed bool,
	actor user.Actor,
) (*ConfirmOverlapResult, error) {
	discount, err := promotion.NewDiscount(in.DiscountPercentage)
	if err != nil {
		return nil, errs.Validation(err)
	}
	period, err := promotion.NewPeriod(in.StartDate, in.EndDate)
	if err != nil {
		return nil, errs.Validation(err)
	}

	var result *ConfirmOverlapResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		prop, err := loadManagedProperty(ctx, tx.Reads(), in.PropertyID, actor)
		if err != nil {
			return err
		}
		if err := tx.LockProperty(ctx, prop.ID()); err != nil {
			return err
		}
		if err := checkPromotionCommission(ctx, tx.Reads(), prop, discount); err != nil {
			return err
		}

		now := uc.clock.Now()
		promo, err := promotion.NewPromotion(prop.ID(), discount, period, actor.ID, clock.Today(uc.clock, uc.loc), now)
		if err != nil {
			return errs.Validation(err)
		}

		overlapping, err := tx.Reads().ActivePromotionsOverlapping(ctx, prop.ID(), period)
		if err != nil {
			return err
		}
		if !confirmed && len(overlapping) > 0 {
			return errs.Conflict(&promotion.OverlapError{Overlapping: overlapping})
		}
		if err := promotion.RequireConfirmation(overlapping, deactivateIDs); err != nil {
			return errs.Conflict(err)
		}

		for _, old := range overlapping {
			if err := old.Deactivate(now); err != nil {
				return errs.Conflict(err)
			}
			if err := tx.Promotions().UpdateActive(ctx, old); err != nil {
				return err
			}
			ev := promotionEvent(old, actor)
			replacedBy := promo.ID()
			ev.ReplacedBy = &replacedBy
			if err := enqueue(ctx, tx, shared.TopicPromotionDeactivated, prop.ID(), ev, now); err != nil {
				return err
			}
		}

		if err := tx.Promotions().Create(ctx, promo); err != nil {
			return err
		}
		if err := enqueue(ctx, tx, shared.TopicPromotionActivated, prop.ID(), promotionEvent(promo, actor), now); err != nil {
			return err
		}

		result = &ConfirmOverlapResult{Promotion: promo, Deactivated: overlapping}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "promotion activated",
		"promotion_id", result.Promotion.ID(),
		"property_id", result.Promotion.PropertyID(),
		"deactivated", len(result.Deactivated))
	return result, nil
}

func (uc *promotionCommandsImpl) Cancel(ctx context.Context, promotionID uuid.UUID, actor user.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		promo, err := tx.Reads().PromotionByID(ctx, promotionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.NotFound(ErrPromotionNotFound)
			}
			return err
		}
		if err := authorizeForProperty(ctx, tx, promo.PropertyID(), actor); err != nil {
			return err
		}
		if err := tx.LockProperty(ctx, promo.PropertyID()); err != nil {
			return err
		}

		now := uc.clock.Now()
		if err := promo.Deactivate(now); err != nil {
			return errs.Conflict(errs.Mark(err, ErrPromotionInactive))
		}
		if err := tx.Promotions().UpdateActive(ctx, promo); err != nil {
			return err
		}
		return enqueue(ctx, tx, shared.TopicPromotionCancelled, promo.PropertyID(), promotionEvent(promo, actor), now)
	})
}

// checkPromotionCommission resolves the commission rule of the property and rejects discounts
// that would drive the commission split negative.
func checkPromotionCommission(
	ctx context.Context,
	reads shared.CommandReads,
	prop *property.Property,
	discount promotion.Discount,
) error {
	rules, err := reads.ActiveCommissionRules(ctx, prop.PropertyTypeID())
	if err != nil {
		return err
	}
	rule, ok := commission.Select(rules, prop.PropertyTypeID())
	if !ok {
		return errs.NotFound(ErrCommissionRuleNotFound)
	}
	if !commission.ValidatePromotionCommission(prop.BasePrice(), discount.Percentage(), rule.Rates()) {
		return errs.Validation(ErrCommissionViolated)
	}
	return nil
}

func promotionEvent(p *promotion.Promotion, actor user.Actor) PromotionEvent {
	return PromotionEvent{
		PromotionID:        p.ID(),
		PropertyID:         p.PropertyID(),
		DiscountPercentage: p.Discount().Percentage().String(),
		StartDate:          p.Period().Start().Format(time.DateOnly),
		EndDate:            p.Period().End().Format(time.DateOnly),
		ActorID:            actor.ID,
	}
}
