package commission

import (
	"hosteed/internal/domain/shared/money"

	"github.com/shopspring/decimal"
)

type Breakdown struct {
	Price              decimal.Decimal
	ClientCommission   decimal.Decimal
	ClientPrice        decimal.Decimal
	HostCommission     decimal.Decimal
	HostPayout         decimal.Decimal
	PlatformCommission decimal.Decimal
}

// IsNonNegative holds when neither the client commission nor the host payout went below zero.
func (b Breakdown) IsNonNegative() bool {
	return !b.ClientCommission.IsNegative() && !b.HostPayout.IsNegative()
}

// Apply splits a nightly price between guest, host and platform, rounded to the currency.
func (r Rates) Apply(price decimal.Decimal, currency money.Currency) Breakdown {
	clientCommission := currency.Round(price.Mul(r.ClientRate).Add(r.ClientFixed))
	hostCommission := currency.Round(price.Mul(r.HostRate).Add(r.HostFixed))
	price = currency.Round(price)

	return Breakdown{
		Price:              price,
		ClientCommission:   clientCommission,
		ClientPrice:        price.Add(clientCommission),
		HostCommission:     hostCommission,
		HostPayout:         price.Sub(hostCommission),
		PlatformCommission: clientCommission.Add(hostCommission),
	}
}

// ValidatePromotionCommission reports whether a percentage discount on basePrice keeps both
// the client commission and the host payout non-negative.
func ValidatePromotionCommission(basePrice, discountPercentage decimal.Decimal, rates Rates) bool {
	discounted := basePrice.Mul(money.PercentFactor(discountPercentage))
	if discounted.Mul(rates.ClientRate).Add(rates.ClientFixed).IsNegative() {
		return false
	}
	hostPayout := discounted.Sub(discounted.Mul(rates.HostRate).Add(rates.HostFixed))
	return !hostPayout.IsNegative()
}
