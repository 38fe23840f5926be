package request

import (
	"hosteed/internal/domain/commission"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionRuleRequest carries rates as decimal strings; range checks happen in the domain.
type CommissionRuleRequest struct {
	Title                 string     `json:"title" binding:"required,max=200"`
	HostCommissionRate    string     `json:"hostCommissionRate" binding:"required,decimal"`
	HostCommissionFixed   string     `json:"hostCommissionFixed" binding:"required,decimal"`
	ClientCommissionRate  string     `json:"clientCommissionRate" binding:"required,decimal"`
	ClientCommissionFixed string     `json:"clientCommissionFixed" binding:"required,decimal"`
	PropertyTypeID        *uuid.UUID `json:"propertyTypeId"`
	Active                *bool      `json:"active"`
}

func (r *CommissionRuleRequest) ToInput() (commands.CommissionRuleInput, error) {
	values := make([]decimal.Decimal, 4)
	for i, s := range []string{r.HostCommissionRate, r.HostCommissionFixed, r.ClientCommissionRate, r.ClientCommissionFixed} {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return commands.CommissionRuleInput{}, errs.Validation(err)
		}
		values[i] = d
	}
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return commands.CommissionRuleInput{
		Title: r.Title,
		Rates: commission.Rates{
			HostRate:    values[0],
			HostFixed:   values[1],
			ClientRate:  values[2],
			ClientFixed: values[3],
		},
		PropertyTypeID: r.PropertyTypeID,
		Active:         active,
	}, nil
}
