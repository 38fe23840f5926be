//go:build unit

package property_test

import (
	"testing"
	"time"

	"hosteed/internal/domain/property"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

func TestNewPromotionPriority(t *testing.T) {
	p, err := property.NewPromotionPriority("")
	require.NoError(t, err)
	assert.Equal(t, property.PriorityPromotionFirst, p)

	p, err = property.NewPromotionPriority("STACK_DISCOUNTS")
	require.NoError(t, err)
	assert.Equal(t, property.PriorityStackDiscounts, p)

	_, err = property.NewPromotionPriority("CHEAPEST")
	assert.ErrorIs(t, err, property.ErrInvalidPromotionPriority)
}

func TestSpecialPriceOn(t *testing.T) {
	propertyID := uuid.New()
	summer, err := property.ReconstructSpecialPrice(uuid.New(), propertyID, decimal.NewFromInt(120),
		date("2024-07-01"), date("2024-08-31"), true)
	require.NoError(t, err)
	festival, err := property.ReconstructSpecialPrice(uuid.New(), propertyID, decimal.NewFromInt(150),
		date("2024-07-14"), date("2024-07-16"), true)
	require.NoError(t, err)
	inactive, err := property.ReconstructSpecialPrice(uuid.New(), propertyID, decimal.NewFromInt(10),
		date("2024-07-01"), date("2024-12-31"), false)
	require.NoError(t, err)

	prices := []*property.SpecialPrice{summer, festival, inactive}

	assert.Equal(t, summer, property.SpecialPriceOn(prices, date("2024-07-01")))
	assert.Equal(t, festival, property.SpecialPriceOn(prices, date("2024-07-16")))
	assert.Equal(t, summer, property.SpecialPriceOn(prices, date("2024-08-31")))
	assert.Nil(t, property.SpecialPriceOn(prices, date("2024-09-01")))
}

func TestReconstructSpecialPriceRejectsInvalid(t *testing.T) {
	_, err := property.ReconstructSpecialPrice(uuid.New(), uuid.New(), decimal.Zero,
		date("2024-07-01"), date("2024-07-02"), true)
	assert.ErrorIs(t, err, property.ErrInvalidSpecialPrice)

	_, err = property.ReconstructSpecialPrice(uuid.New(), uuid.New(), decimal.NewFromInt(10),
		date("2024-07-02"), date("2024-07-01"), true)
	assert.ErrorIs(t, err, property.ErrInvalidSpecialPrice)
}
