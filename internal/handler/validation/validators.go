// Package validation registers the custom binding tags used by request DTOs.
package validation

import (
	"hosteed/internal/domain/extra"
	"hosteed/internal/domain/shared/money"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	TagCurrency    = "currency"
	TagPricingType = "pricing_type"
	TagDecimal     = "decimal"
	TagDecimalGTE0 = "decimal_gte0"
)

// Register installs the custom tags on gin's validator. Safe to call more than once.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	for tag, fn := range map[string]validator.Func{
		TagCurrency:    validCurrency,
		TagPricingType: validPricingType,
		TagDecimal:     validDecimal,
		TagDecimalGTE0: validNonNegativeDecimal,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func validCurrency(fl validator.FieldLevel) bool {
	return money.Currency(fl.Field().String()).IsValid()
}

func validPricingType(fl validator.FieldLevel) bool {
	return extra.PricingType(fl.Field().String()).IsValid()
}

func validDecimal(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(fl.Field().String())
	return err == nil
}

func validNonNegativeDecimal(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !d.IsNegative()
}
