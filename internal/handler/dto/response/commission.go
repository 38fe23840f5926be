package response

import (
	"time"

	"hosteed/internal/domain/commission"
)

type CommissionRuleResponse struct {
	ID                    string    `json:"id"`
	Title                 string    `json:"title"`
	HostCommissionRate    string    `json:"hostCommissionRate"`
	HostCommissionFixed   string    `json:"hostCommissionFixed"`
	ClientCommissionRate  string    `json:"clientCommissionRate"`
	ClientCommissionFixed string    `json:"clientCommissionFixed"`
	PropertyTypeID        *string   `json:"propertyTypeId,omitempty"`
	Active                bool      `json:"active"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func FromCommissionRule(r *commission.Rule) *CommissionRuleResponse {
	rates := r.Rates()
	return &CommissionRuleResponse{
		ID:                    r.ID().String(),
		Title:                 r.Title(),
		HostCommissionRate:    rates.HostRate.String(),
		HostCommissionFixed:   rates.HostFixed.String(),
		ClientCommissionRate:  rates.ClientRate.String(),
		ClientCommissionFixed: rates.ClientFixed.String(),
		PropertyTypeID:        idString(r.PropertyTypeID()),
		Active:                r.IsActive(),
		UpdatedAt:             r.UpdatedAt(),
	}
}
