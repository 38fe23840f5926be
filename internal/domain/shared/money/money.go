package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnsupportedCurrency = errors.New("unsupported currency")

type Currency string

const (
	EUR Currency = "EUR"
	MGA Currency = "MGA"
)

func (c Currency) String() string {
	return string(c)
}

func (c Currency) IsValid() bool {
	switch c {
	case EUR, MGA:
		return true
	default:
		return false
	}
}

// Places is the number of minor-unit digits of the currency.
func (c Currency) Places() int32 {
	if c == MGA {
		return 0
	}
	return 2
}

// Round rounds half away from zero to the currency's minor unit.
func (c Currency) Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(c.Places())
}

func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrUnsupportedCurrency
	}
	return c, nil
}

var hundred = decimal.NewFromInt(100)

// PercentFactor turns a percentage discount into the multiplier left to pay.
func PercentFactor(pct decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Sub(pct.Div(hundred))
}
