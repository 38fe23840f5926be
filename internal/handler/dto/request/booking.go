package request

import (
	"hosteed/internal/domain/shared/money"
	"hosteed/internal/usecase/queries"

	"github.com/google/uuid"
)

type CostQuoteRequest struct {
	PropertyID       uuid.UUID   `json:"propertyId" binding:"required"`
	StartDate        string      `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate          string      `json:"endDate" binding:"required,datetime=2006-01-02"`
	GuestCount       int         `json:"guestCount" binding:"required,min=1"`
	SelectedExtraIDs []uuid.UUID `json:"selectedExtraIds"`
	Currency         string      `json:"currency" binding:"required,currency"`
}

func (r *CostQuoteRequest) ToInput() (queries.CostQuoteInput, error) {
	start, end, err := parseRange(r.StartDate, r.EndDate)
	if err != nil {
		return queries.CostQuoteInput{}, err
	}
	return queries.CostQuoteInput{
		PropertyID:       r.PropertyID,
		StartDate:        start,
		EndDate:          end,
		GuestCount:       r.GuestCount,
		SelectedExtraIDs: r.SelectedExtraIDs,
		Currency:         money.Currency(r.Currency),
	}, nil
}

type PriceQuoteRequest struct {
	PropertyID uuid.UUID `json:"propertyId" binding:"required"`
	StartDate  string    `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate    string    `json:"endDate" binding:"required,datetime=2006-01-02"`
}

type NearbyQuery struct {
	Lat      *float64 `form:"lat" binding:"required"`
	Lng      *float64 `form:"lng" binding:"required"`
	RadiusKm *float64 `form:"radius_km" binding:"required"`
}
