package response

import (
	"time"

	"hosteed/internal/domain/extra"
	"hosteed/internal/domain/property"
	"hosteed/internal/usecase/queries"
)

type PropertyResponse struct {
	ID                string    `json:"id"`
	HostID            string    `json:"hostId"`
	PropertyTypeID    *string   `json:"propertyTypeId,omitempty"`
	Title             string    `json:"title"`
	BasePrice         string    `json:"basePrice"`
	Currency          string    `json:"currency"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	PromotionPriority string    `json:"promotionPriority"`
	CreatedAt         time.Time `json:"createdAt"`
}

func FromProperty(p *property.Property) *PropertyResponse {
	return &PropertyResponse{
		ID:                p.ID().String(),
		HostID:            p.HostID().String(),
		PropertyTypeID:    idString(p.PropertyTypeID()),
		Title:             p.Title(),
		BasePrice:         p.BasePrice().String(),
		Currency:          p.Currency().String(),
		Latitude:          p.Location().Lat,
		Longitude:         p.Location().Lng,
		PromotionPriority: p.PromotionPriority().String(),
		CreatedAt:         p.CreatedAt(),
	}
}

type PropertyDetailsResponse struct {
	PropertyResponse
	Extras []*ExtraResponse `json:"extras"`
}

func FromPropertyDetails(d *queries.PropertyDetails) *PropertyDetailsResponse {
	return &PropertyDetailsResponse{
		PropertyResponse: *FromProperty(d.Property),
		Extras:           FromExtras(d.Extras),
	}
}

type ExtraResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	PriceEUR    string  `json:"priceEUR"`
	PriceMGA    string  `json:"priceMGA"`
	PricingType string  `json:"pricingType"`
	OwnerID     *string `json:"ownerId,omitempty"`
}

func FromExtra(e *extra.Extra) *ExtraResponse {
	return &ExtraResponse{
		ID:          e.ID().String(),
		Name:        e.Name(),
		Description: e.Description(),
		PriceEUR:    e.PriceEUR().String(),
		PriceMGA:    e.PriceMGA().String(),
		PricingType: e.PricingType().String(),
		OwnerID:     idString(e.OwnerID()),
	}
}

func FromExtras(items []*extra.Extra) []*ExtraResponse {
	res := make([]*ExtraResponse, len(items))
	for i, e := range items {
		res[i] = FromExtra(e)
	}
	return res
}
