//go:build unit

package promotion_test

import (
	"errors"
	"testing"
	"time"

	"hosteed/internal/domain/promotion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	today = day("2024-06-01")
	now   = today.Add(10 * time.Hour)
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func period(t *testing.T, start, end string) promotion.Period {
	t.Helper()
	p, err := promotion.NewPeriod(day(start), day(end))
	require.NoError(t, err)
	return p
}

func discount(t *testing.T, pct string) promotion.Discount {
	t.Helper()
	disc, err := promotion.NewDiscount(d(pct))
	require.NoError(t, err)
	return disc
}

func active(t *testing.T, propertyID uuid.UUID, pct, start, end string) *promotion.Promotion {
	t.Helper()
	return promotion.ReconstructPromotion(uuid.New(), propertyID, discount(t, pct),
		period(t, start, end), true, uuid.New(), now, now)
}

func TestNewDiscount(t *testing.T) {
	for _, pct := range []string{"0", "-5", "100.01"} {
		_, err := promotion.NewDiscount(d(pct))
		assert.ErrorIs(t, err, promotion.ErrInvalidDiscount, pct)
	}
	for _, pct := range []string{"0.5", "15", "100"} {
		_, err := promotion.NewDiscount(d(pct))
		assert.NoError(t, err, pct)
	}
}

func TestNewPeriod(t *testing.T) {
	_, err := promotion.NewPeriod(day("2024-07-10"), day("2024-07-10"))
	assert.ErrorIs(t, err, promotion.ErrInvalidPeriod)

	_, err = promotion.NewPeriod(day("2024-07-10"), day("2024-07-01"))
	assert.ErrorIs(t, err, promotion.ErrInvalidPeriod)
}

func TestNewPromotion(t *testing.T) {
	propertyID := uuid.New()

	t.Run("starting today is allowed", func(t *testing.T) {
		p, err := promotion.NewPromotion(propertyID, discount(t, "10"), period(t, "2024-06-01", "2024-06-05"),
			uuid.New(), now, now)
		require.NoError(t, err)
		assert.True(t, p.IsActive())
		assert.Equal(t, promotion.StatusActive, p.Status(today))
	})

	t.Run("starting yesterday is rejected", func(t *testing.T) {
		_, err := promotion.NewPromotion(propertyID, discount(t, "10"), period(t, "2024-05-31", "2024-06-05"),
			uuid.New(), now, now)
		assert.ErrorIs(t, err, promotion.ErrStartInPast)
	})
}

func TestStatus(t *testing.T) {
	p := active(t, uuid.New(), "10", "2024-06-01", "2024-06-05")

	assert.Equal(t, promotion.StatusActive, p.Status(day("2024-06-05")))
	assert.Equal(t, promotion.StatusExpired, p.Status(day("2024-06-06")))

	require.NoError(t, p.Deactivate(now))
	assert.Equal(t, promotion.StatusCancelled, p.Status(day("2024-06-02")))
	assert.ErrorIs(t, p.Deactivate(now), promotion.ErrAlreadyInactive)
}

func TestFindOverlapping(t *testing.T) {
	propertyID := uuid.New()
	existing := active(t, propertyID, "10", "2024-07-05", "2024-07-15")
	disjoint := active(t, propertyID, "5", "2024-08-01", "2024-08-10")
	otherProperty := active(t, uuid.New(), "20", "2024-07-01", "2024-07-31")
	cancelled := active(t, propertyID, "30", "2024-07-01", "2024-07-31")
	require.NoError(t, cancelled.Deactivate(now))

	all := []*promotion.Promotion{existing, disjoint, otherProperty, cancelled}

	t.Run("overlap with an active promotion is reported", func(t *testing.T) {
		got := promotion.FindOverlapping(propertyID, period(t, "2024-07-01", "2024-07-10"), all)
		require.Len(t, got, 1)
		assert.Equal(t, existing.ID(), got[0].ID())
	})

	t.Run("sharing a single boundary day overlaps", func(t *testing.T) {
		got := promotion.FindOverlapping(propertyID, period(t, "2024-07-15", "2024-07-20"), all)
		assert.Len(t, got, 1)
	})

	t.Run("strictly disjoint needs no confirmation", func(t *testing.T) {
		got := promotion.FindOverlapping(propertyID, period(t, "2024-07-16", "2024-07-31"), all)
		assert.Empty(t, got)
		assert.NoError(t, promotion.RequireConfirmation(got, nil))
	})
}

func TestRequireConfirmation(t *testing.T) {
	propertyID := uuid.New()
	a := active(t, propertyID, "10", "2024-07-05", "2024-07-15")
	b := active(t, propertyID, "10", "2024-07-16", "2024-07-20")

	err := promotion.RequireConfirmation([]*promotion.Promotion{a, b}, []uuid.UUID{a.ID()})
	var overlap *promotion.OverlapError
	require.True(t, errors.As(err, &overlap))
	require.Len(t, overlap.Overlapping, 1)
	assert.Equal(t, b.ID(), overlap.Overlapping[0].ID())
	assert.Contains(t, err.Error(), b.ID().String())

	assert.NoError(t, promotion.RequireConfirmation([]*promotion.Promotion{a, b}, []uuid.UUID{b.ID(), a.ID(), uuid.New()}))
}

func TestActiveOn(t *testing.T) {
	propertyID := uuid.New()
	july := active(t, propertyID, "10", "2024-07-01", "2024-07-31")
	legacy := active(t, propertyID, "25", "2024-07-10", "2024-07-12")

	promos := []*promotion.Promotion{july, legacy}
	assert.Equal(t, july, promotion.ActiveOn(promos, day("2024-07-01")))
	assert.Equal(t, legacy, promotion.ActiveOn(promos, day("2024-07-11")))
	assert.Equal(t, july, promotion.ActiveOn(promos, day("2024-07-31")))
	assert.Nil(t, promotion.ActiveOn(promos, day("2024-08-01")))
}
