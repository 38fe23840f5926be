package response

import (
	"time"

	"hosteed/internal/domain/promotion"
	"hosteed/internal/usecase/commands"
	"hosteed/internal/usecase/queries"
)

type PromotionResponse struct {
	ID                 string    `json:"id"`
	PropertyID         string    `json:"propertyId"`
	DiscountPercentage string    `json:"discountPercentage"`
	StartDate          string    `json:"startDate"`
	EndDate            string    `json:"endDate"`
	Active             bool      `json:"active"`
	Status             string    `json:"status,omitempty"`
	CreatedBy          string    `json:"createdBy"`
	CreatedAt          time.Time `json:"createdAt"`
}

func FromPromotion(p *promotion.Promotion) *PromotionResponse {
	return &PromotionResponse{
		ID:                 p.ID().String(),
		PropertyID:         p.PropertyID().String(),
		DiscountPercentage: p.Discount().Percentage().String(),
		StartDate:          formatDate(p.Period().Start()),
		EndDate:            formatDate(p.Period().End()),
		Active:             p.IsActive(),
		CreatedBy:          p.CreatedBy().String(),
		CreatedAt:          p.CreatedAt(),
	}
}

func FromPromotions(items []*promotion.Promotion) []*PromotionResponse {
	res := make([]*PromotionResponse, len(items))
	for i, p := range items {
		res[i] = FromPromotion(p)
	}
	return res
}

func FromPromotionViews(items []queries.PromotionView) []*PromotionResponse {
	res := make([]*PromotionResponse, len(items))
	for i, v := range items {
		res[i] = FromPromotion(v.Promotion)
		res[i].Status = v.Status.String()
	}
	return res
}

type PromotionListResponse struct {
	Promotions []*PromotionResponse `json:"promotions"`
	NextCursor string               `json:"nextCursor,omitempty"`
}

type OverlapResponse struct {
	OverlappingPromotions []*PromotionResponse `json:"overlappingPromotions"`
}

type ConfirmOverlapResponse struct {
	Promotion   *PromotionResponse   `json:"promotion"`
	Deactivated []*PromotionResponse `json:"deactivated"`
}

func FromConfirmOverlap(r *commands.ConfirmOverlapResult) *ConfirmOverlapResponse {
	return &ConfirmOverlapResponse{
		Promotion:   FromPromotion(r.Promotion),
		Deactivated: FromPromotions(r.Deactivated),
	}
}

type ValidateCommissionResponse struct {
	Valid bool `json:"valid"`
}
