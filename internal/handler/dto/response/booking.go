package response

import (
	"hosteed/internal/domain/pricing"
	"hosteed/internal/domain/promotion"
	"hosteed/internal/usecase/queries"
)

type ExtraCostResponse struct {
	ExtraID     string `json:"extraId"`
	Name        string `json:"name"`
	PricingType string `json:"pricingType"`
	UnitPrice   string `json:"unitPrice"`
	Multiplier  int    `json:"multiplier"`
	Cost        string `json:"cost"`
}

type BookingCostResponse struct {
	NumberOfNights    int                 `json:"numberOfNights"`
	BaseTotal         string              `json:"baseTotal"`
	ExtrasTotal       string              `json:"extrasTotal"`
	GrandTotal        string              `json:"grandTotal"`
	Currency          string              `json:"currency"`
	PerExtraBreakdown []ExtraCostResponse `json:"perExtraBreakdown" copier:"-"`
}

func FromBookingCost(b *pricing.BookingCostBreakdown) *BookingCostResponse {
	res := &BookingCostResponse{}
	copyInto(res, b)
	res.PerExtraBreakdown = make([]ExtraCostResponse, len(b.PerExtraBreakdown))
	for i := range b.PerExtraBreakdown {
		copyInto(&res.PerExtraBreakdown[i], &b.PerExtraBreakdown[i])
	}
	return res
}

type NightQuoteResponse struct {
	Date                  string  `json:"date"`
	BasePrice             string  `json:"basePrice"`
	AppliedSpecialPriceID *string `json:"appliedSpecialPriceId,omitempty"`
	AppliedSpecialPrice   *string `json:"appliedSpecialPrice,omitempty"`
	AppliedPromotionID    *string `json:"appliedPromotionId,omitempty"`
	AppliedDiscount       *string `json:"appliedDiscountPercentage,omitempty"`
	ClientBasePrice       string  `json:"clientBasePrice"`
	ClientCommission      string  `json:"clientCommission"`
	ClientPrice           string  `json:"clientPrice"`
	HostCommission        string  `json:"hostCommission"`
	HostPayout            string  `json:"hostPayout"`
	PlatformCommission    string  `json:"platformCommission"`
}

type PriceQuoteResponse struct {
	Policy             string               `json:"policy"`
	Currency           string               `json:"currency"`
	ClientBaseTotal    string               `json:"clientBaseTotal"`
	ClientCommission   string               `json:"clientCommission"`
	ClientTotal        string               `json:"clientTotal"`
	HostCommission     string               `json:"hostCommission"`
	HostPayout         string               `json:"hostPayout"`
	PlatformCommission string               `json:"platformCommission"`
	Nights             []NightQuoteResponse `json:"nights" copier:"-"`
}

func FromStayQuote(q *promotion.StayQuote) *PriceQuoteResponse {
	res := &PriceQuoteResponse{}
	copyInto(res, q)
	res.Nights = make([]NightQuoteResponse, len(q.Nights))
	for i, n := range q.Nights {
		night := &res.Nights[i]
		copyInto(night, &n.Commission)
		night.Date = formatDate(n.Date)
		night.BasePrice = n.BasePrice.String()
		night.ClientBasePrice = n.ClientBasePrice().String()
		if sp := n.AppliedSpecialPrice; sp != nil {
			id, price := sp.ID().String(), sp.PricePerNight().String()
			night.AppliedSpecialPriceID, night.AppliedSpecialPrice = &id, &price
		}
		if p := n.AppliedPromotion; p != nil {
			id, pct := p.ID().String(), p.Discount().Percentage().String()
			night.AppliedPromotionID, night.AppliedDiscount = &id, &pct
		}
	}
	return res
}

type NearbyPropertyResponse struct {
	PropertyResponse
	DistanceKm float64 `json:"distanceKm"`
}

func FromNearby(items []queries.NearbyProperty) []NearbyPropertyResponse {
	res := make([]NearbyPropertyResponse, len(items))
	for i, it := range items {
		res[i] = NearbyPropertyResponse{
			PropertyResponse: *FromProperty(it.Property),
			DistanceKm:       it.DistanceKm,
		}
	}
	return res
}
