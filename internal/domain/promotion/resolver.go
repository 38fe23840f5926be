package promotion

import (
	"time"

	"hosteed/internal/domain/commission"
	"hosteed/internal/domain/property"
	"hosteed/internal/domain/shared/money"

	"github.com/shopspring/decimal"
)

// NightInput holds what applies to one night before the host's policy combines it.
type NightInput struct {
	Date         time.Time
	BasePrice    decimal.Decimal
	SpecialPrice *property.SpecialPrice
	Promotion    *Promotion
}

// Quote is the resolved price of one night with its commission split.
type Quote struct {
	Date                time.Time
	Policy              property.PromotionPriority
	BasePrice           decimal.Decimal
	AppliedSpecialPrice *property.SpecialPrice
	AppliedPromotion    *Promotion
	Commission          commission.Breakdown
}

// ClientBasePrice is the nightly price after discounts, before client commission.
func (q Quote) ClientBasePrice() decimal.Decimal {
	return q.Commission.Price
}

type Resolver struct {
	Rates    commission.Rates
	Currency money.Currency
}

func NewResolver(rates commission.Rates, currency money.Currency) *Resolver {
	return &Resolver{Rates: rates, Currency: currency}
}

type candidate struct {
	price     decimal.Decimal
	special   *property.SpecialPrice
	promotion *Promotion
}

// Resolve combines special price and promotion for one night under the given policy.
func (r *Resolver) Resolve(policy property.PromotionPriority, in NightInput) Quote {
	var c candidate
	switch policy {
	case property.PrioritySpecialPriceFirst:
		c = r.specialPriceFirst(in)
	case property.PriorityMostAdvantageous:
		c = r.mostAdvantageous(in)
	case property.PriorityStackDiscounts:
		c = r.stackDiscounts(in)
	default:
		policy = property.PriorityPromotionFirst
		c = r.promotionFirst(in)
	}

	return Quote{
		Date:                in.Date,
		Policy:              policy,
		BasePrice:           in.BasePrice,
		AppliedSpecialPrice: c.special,
		AppliedPromotion:    c.promotion,
		Commission:          r.Rates.Apply(c.price, r.Currency),
	}
}

func (r *Resolver) promotionFirst(in NightInput) candidate {
	if in.Promotion != nil {
		return candidate{price: in.Promotion.discount.ApplyTo(in.BasePrice), promotion: in.Promotion}
	}
	if in.SpecialPrice != nil {
		return candidate{price: in.SpecialPrice.PricePerNight(), special: in.SpecialPrice}
	}
	return candidate{price: in.BasePrice}
}

func (r *Resolver) specialPriceFirst(in NightInput) candidate {
	c := candidate{price: in.BasePrice}
	if in.SpecialPrice != nil {
		c.price = in.SpecialPrice.PricePerNight()
		c.special = in.SpecialPrice
	}
	if in.Promotion != nil {
		c.price = in.Promotion.discount.ApplyTo(c.price)
		c.promotion = in.Promotion
	}
	return c
}

// mostAdvantageous picks the lowest client price among candidates whose commission split stays
// non-negative: base, promotion on base, special price alone and the promotion on top of the
// special price. The undiscounted base price is the fallback.
func (r *Resolver) mostAdvantageous(in NightInput) candidate {
	base := candidate{price: in.BasePrice}
	candidates := []candidate{base}
	if in.Promotion != nil {
		candidates = append(candidates, candidate{
			price:     in.Promotion.discount.ApplyTo(in.BasePrice),
			promotion: in.Promotion,
		})
	}
	if in.SpecialPrice != nil {
		candidates = append(candidates, candidate{
			price:   in.SpecialPrice.PricePerNight(),
			special: in.SpecialPrice,
		})
	}
	if in.SpecialPrice != nil && in.Promotion != nil {
		candidates = append(candidates, r.specialPriceFirst(in))
	}

	best := base
	var bestClient *decimal.Decimal
	for _, c := range candidates {
		b := r.Rates.Apply(c.price, r.Currency)
		if !b.IsNonNegative() {
			continue
		}
		if bestClient == nil || b.ClientPrice.LessThan(*bestClient) {
			best = c
			clientPrice := b.ClientPrice
			bestClient = &clientPrice
		}
	}
	return best
}

// stackDiscounts compounds both reductions: a special price at 90% of base and a 10% promotion
// give 0.9 x 0.9 = 0.81 of base. A special price above the base is not a reduction and is ignored.
func (r *Resolver) stackDiscounts(in NightInput) candidate {
	c := candidate{price: in.BasePrice}
	if in.SpecialPrice != nil && in.SpecialPrice.PricePerNight().LessThan(in.BasePrice) {
		c.price = in.SpecialPrice.PricePerNight()
		c.special = in.SpecialPrice
	}
	if in.Promotion != nil {
		c.price = in.Promotion.discount.ApplyTo(c.price)
		c.promotion = in.Promotion
	}
	return c
}

type StayQuote struct {
	Policy             property.PromotionPriority
	Currency           money.Currency
	Nights             []Quote
	ClientBaseTotal    decimal.Decimal
	ClientCommission   decimal.Decimal
	ClientTotal        decimal.Decimal
	HostCommission     decimal.Decimal
	HostPayout         decimal.Decimal
	PlatformCommission decimal.Decimal
}

// ResolveStay resolves every night and sums the already rounded nightly amounts.
func (r *Resolver) ResolveStay(policy property.PromotionPriority, nights []NightInput) StayQuote {
	sq := StayQuote{
		Policy:             policy,
		Currency:           r.Currency,
		Nights:             make([]Quote, 0, len(nights)),
		ClientBaseTotal:    decimal.Zero,
		ClientCommission:   decimal.Zero,
		ClientTotal:        decimal.Zero,
		HostCommission:     decimal.Zero,
		HostPayout:         decimal.Zero,
		PlatformCommission: decimal.Zero,
	}
	for _, in := range nights {
		q := r.Resolve(policy, in)
		sq.Policy = q.Policy
		sq.Nights = append(sq.Nights, q)
		sq.ClientBaseTotal = sq.ClientBaseTotal.Add(q.Commission.Price)
		sq.ClientCommission = sq.ClientCommission.Add(q.Commission.ClientCommission)
		sq.ClientTotal = sq.ClientTotal.Add(q.Commission.ClientPrice)
		sq.HostCommission = sq.HostCommission.Add(q.Commission.HostCommission)
		sq.HostPayout = sq.HostPayout.Add(q.Commission.HostPayout)
		sq.PlatformCommission = sq.PlatformCommission.Add(q.Commission.PlatformCommission)
	}
	return sq
}
