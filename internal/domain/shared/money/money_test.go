//go:build unit

package money_test

import (
	"testing"

	"hosteed/internal/domain/shared/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	c, err := money.ParseCurrency(" eur ")
	require.NoError(t, err)
	assert.Equal(t, money.EUR, c)

	_, err = money.ParseCurrency("USD")
	assert.ErrorIs(t, err, money.ErrUnsupportedCurrency)
}

func TestRound(t *testing.T) {
	v := decimal.RequireFromString("1234.565")
	assert.Equal(t, "1234.57", money.EUR.Round(v).StringFixed(2))
	assert.Equal(t, "1235", money.MGA.Round(v).String())
}

func TestPercentFactor(t *testing.T) {
	f := money.PercentFactor(decimal.NewFromInt(10))
	assert.True(t, f.Equal(decimal.RequireFromString("0.9")))
	assert.True(t, f.Mul(f).Equal(decimal.RequireFromString("0.81")))
}
