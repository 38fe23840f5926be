package request

import (
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePromotionRequest struct {
	PropertyID         uuid.UUID `json:"propertyId" binding:"required"`
	DiscountPercentage string    `json:"discountPercentage" binding:"required,decimal"`
	StartDate          string    `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate            string    `json:"endDate" binding:"required,datetime=2006-01-02"`
}

func (r *CreatePromotionRequest) ToInput() (commands.CreatePromotionInput, error) {
	pct, err := decimal.NewFromString(r.DiscountPercentage)
	if err != nil {
		return commands.CreatePromotionInput{}, errs.Validation(err)
	}
	start, end, err := parseRange(r.StartDate, r.EndDate)
	if err != nil {
		return commands.CreatePromotionInput{}, err
	}
	return commands.CreatePromotionInput{
		PropertyID:         r.PropertyID,
		DiscountPercentage: pct,
		StartDate:          start,
		EndDate:            end,
	}, nil
}

type ConfirmOverlapRequest struct {
	CreatePromotionRequest
	DeactivateIDs []uuid.UUID `json:"deactivateIds" binding:"required,min=1,dive,required"`
}

type ValidateCommissionRequest struct {
	PropertyID         uuid.UUID `json:"propertyId" binding:"required"`
	DiscountPercentage string    `json:"discountPercentage" binding:"required,decimal"`
}

func (r *ValidateCommissionRequest) Discount() (decimal.Decimal, error) {
	pct, err := decimal.NewFromString(r.DiscountPercentage)
	if err != nil {
		return decimal.Zero, errs.Validation(err)
	}
	return pct, nil
}
