//go:build unit

package promotion_test

import (
	"testing"

	"hosteed/internal/domain/commission"
	"hosteed/internal/domain/property"
	"hosteed/internal/domain/promotion"
	"hosteed/internal/domain/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noFees = commission.Rates{
	HostRate:    decimal.Zero,
	HostFixed:   decimal.Zero,
	ClientRate:  decimal.Zero,
	ClientFixed: decimal.Zero,
}

func special(t *testing.T, price string) *property.SpecialPrice {
	t.Helper()
	sp, err := property.ReconstructSpecialPrice(uuid.New(), uuid.New(), d(price),
		day("2024-07-01"), day("2024-07-31"), true)
	require.NoError(t, err)
	return sp
}

func night(t *testing.T, base string, sp *property.SpecialPrice, promo *promotion.Promotion) promotion.NightInput {
	t.Helper()
	return promotion.NightInput{Date: day("2024-07-10"), BasePrice: d(base), SpecialPrice: sp, Promotion: promo}
}

func assertPrice(t *testing.T, want string, q promotion.Quote) {
	t.Helper()
	assert.True(t, q.ClientBasePrice().Equal(d(want)), "want %s got %s", want, q.ClientBasePrice())
}

func TestResolvePromotionFirst(t *testing.T) {
	r := promotion.NewResolver(noFees, money.EUR)
	promo := active(t, uuid.New(), "10", "2024-07-01", "2024-07-31")
	sp := special(t, "80")

	q := r.Resolve(property.PriorityPromotionFirst, night(t, "100", sp, promo))
	assertPrice(t, "90", q)
	assert.Equal(t, promo, q.AppliedPromotion)
	assert.Nil(t, q.AppliedSpecialPrice, "special price is ignored while a promotion applies")

	q = r.Resolve(property.PriorityPromotionFirst, night(t, "100", sp, nil))
	assertPrice(t, "80", q)
	assert.Equal(t, sp, q.AppliedSpecialPrice)

	q = r.Resolve(property.PromotionPriority(""), night(t, "100", nil, nil))
	assertPrice(t, "100", q)
	assert.Equal(t, property.PriorityPromotionFirst, q.Policy)
}

func TestResolveSpecialPriceFirst(t *testing.T) {
	r := promotion.NewResolver(noFees, money.EUR)
	promo := active(t, uuid.New(), "10", "2024-07-01", "2024-07-31")

	q := r.Resolve(property.PrioritySpecialPriceFirst, night(t, "100", special(t, "80"), promo))
	assertPrice(t, "72", q)
	assert.NotNil(t, q.AppliedSpecialPrice)
	assert.NotNil(t, q.AppliedPromotion)

	q = r.Resolve(property.PrioritySpecialPriceFirst, night(t, "100", special(t, "150"), promo))
	assertPrice(t, "135", q)
}

func TestResolveMostAdvantageous(t *testing.T) {
	promo := active(t, uuid.New(), "10", "2024-07-01", "2024-07-31")

	t.Run("promotion on top of a lower special price wins", func(t *testing.T) {
		r := promotion.NewResolver(noFees, money.EUR)
		q := r.Resolve(property.PriorityMostAdvantageous, night(t, "100", special(t, "85"), promo))
		assertPrice(t, "76.5", q)
		assert.NotNil(t, q.AppliedSpecialPrice)
		assert.Equal(t, promo, q.AppliedPromotion)
	})

	t.Run("never worse than either ordering", func(t *testing.T) {
		r := promotion.NewResolver(noFees, money.EUR)
		in := night(t, "100", special(t, "80"), promo)
		best := r.Resolve(property.PriorityMostAdvantageous, in).Commission.ClientPrice
		for _, p := range []property.PromotionPriority{property.PriorityPromotionFirst, property.PrioritySpecialPriceFirst} {
			other := r.Resolve(p, in).Commission.ClientPrice
			assert.True(t, best.LessThanOrEqual(other), "%s: %s > %s", p, best, other)
		}
		assert.True(t, best.Equal(d("72")), "got %s", best)
	})

	t.Run("special price alone wins when no promotion applies", func(t *testing.T) {
		r := promotion.NewResolver(noFees, money.EUR)
		q := r.Resolve(property.PriorityMostAdvantageous, night(t, "100", special(t, "85"), nil))
		assertPrice(t, "85", q)
		assert.Nil(t, q.AppliedPromotion)
	})

	t.Run("candidates breaking commission are skipped", func(t *testing.T) {
		fees := commission.Rates{
			HostRate:    decimal.Zero,
			HostFixed:   d("88"),
			ClientRate:  decimal.Zero,
			ClientFixed: decimal.Zero,
		}
		r := promotion.NewResolver(fees, money.EUR)
		q := r.Resolve(property.PriorityMostAdvantageous, night(t, "100", special(t, "85"), promo))
		assertPrice(t, "90", q)
		assert.True(t, q.Commission.IsNonNegative())
	})

	t.Run("falls back to base when nothing is valid", func(t *testing.T) {
		fees := commission.Rates{
			HostRate:    decimal.Zero,
			HostFixed:   d("500"),
			ClientRate:  decimal.Zero,
			ClientFixed: decimal.Zero,
		}
		r := promotion.NewResolver(fees, money.EUR)
		q := r.Resolve(property.PriorityMostAdvantageous, night(t, "100", special(t, "85"), promo))
		assertPrice(t, "100", q)
		assert.Nil(t, q.AppliedPromotion)
		assert.Nil(t, q.AppliedSpecialPrice)
	})
}

func TestResolveStackDiscounts(t *testing.T) {
	r := promotion.NewResolver(noFees, money.EUR)
	promo := active(t, uuid.New(), "10", "2024-07-01", "2024-07-31")

	t.Run("two ten percent reductions compound to 19 percent", func(t *testing.T) {
		q := r.Resolve(property.PriorityStackDiscounts, night(t, "100", special(t, "90"), promo))
		assertPrice(t, "81", q)
	})

	t.Run("special price above base contributes nothing", func(t *testing.T) {
		q := r.Resolve(property.PriorityStackDiscounts, night(t, "100", special(t, "120"), promo))
		assertPrice(t, "90", q)
		assert.Nil(t, q.AppliedSpecialPrice)
	})
}

func TestResolveCommissionOnResultingPrice(t *testing.T) {
	fees := commission.Rates{
		HostRate:    d("0.10"),
		HostFixed:   decimal.Zero,
		ClientRate:  d("0.05"),
		ClientFixed: d("1"),
	}
	r := promotion.NewResolver(fees, money.EUR)
	promo := active(t, uuid.New(), "20", "2024-07-01", "2024-07-31")

	q := r.Resolve(property.PriorityPromotionFirst, night(t, "100", nil, promo))
	assert.Equal(t, "80.00", q.Commission.Price.StringFixed(2))
	assert.Equal(t, "5.00", q.Commission.ClientCommission.StringFixed(2))
	assert.Equal(t, "85.00", q.Commission.ClientPrice.StringFixed(2))
	assert.Equal(t, "72.00", q.Commission.HostPayout.StringFixed(2))
	assert.Equal(t, "13.00", q.Commission.PlatformCommission.StringFixed(2))
}

func TestResolveStay(t *testing.T) {
	r := promotion.NewResolver(noFees, money.EUR)
	promo := active(t, uuid.New(), "10", "2024-07-02", "2024-07-31")

	nights := []promotion.NightInput{
		{Date: day("2024-07-01"), BasePrice: d("100")},
		{Date: day("2024-07-02"), BasePrice: d("100"), Promotion: promo},
	}
	sq := r.ResolveStay(property.PriorityPromotionFirst, nights)
	require.Len(t, sq.Nights, 2)
	assert.True(t, sq.ClientBaseTotal.Equal(d("190")))
	assert.True(t, sq.ClientTotal.Equal(d("190")))
	assert.Equal(t, money.EUR, sq.Currency)
}
