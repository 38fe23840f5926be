package request

import (
	"hosteed/internal/domain/extra"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateExtraRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	PriceEUR    string  `json:"priceEUR" binding:"required,decimal_gte0"`
	PriceMGA    string  `json:"priceMGA" binding:"required,decimal_gte0"`
	PricingType string  `json:"pricingType" binding:"required,pricing_type"`
	// Global is honoured for admins only
	Global bool `json:"global"`
}

func (r *CreateExtraRequest) ToInput() (commands.CreateExtraInput, error) {
	eur, err := decimal.NewFromString(r.PriceEUR)
	if err != nil {
		return commands.CreateExtraInput{}, errs.Validation(err)
	}
	mga, err := decimal.NewFromString(r.PriceMGA)
	if err != nil {
		return commands.CreateExtraInput{}, errs.Validation(err)
	}
	return commands.CreateExtraInput{
		Name:        r.Name,
		Description: r.Description,
		PriceEUR:    eur,
		PriceMGA:    mga,
		PricingType: extra.PricingType(r.PricingType),
		Global:      r.Global,
	}, nil
}

type AttachExtraRequest struct {
	ExtraID uuid.UUID `json:"extraId" binding:"required"`
}
