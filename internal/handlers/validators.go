package handlers

import (
	"errors"
	"reflect"
	"slices"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators registers the custom binding tags on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}

	// Lets string-based tags run against decimal fields.
	v.RegisterCustomTypeFunc(decimalAsString, decimal.Decimal{})

	validations := map[string]validator.Func{
		"positivedecimal":    positiveDecimal,
		"nonnegativedecimal": nonNegativeDecimal,
		"ledgercategory":     oneOfList(domain.AllCategories()),
		"paymentmethod":      oneOfList(domain.PaymentMethods),
		"recurrence":         oneOfList(domain.Recurrences),
		"investmenttype":     oneOfList(domain.InvestmentTypes),
		"debttype":           oneOfList(domain.DebtTypes),
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func decimalAsString(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func parseDecimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(fl.Field().String())
	return d, err == nil
}

func positiveDecimal(fl validator.FieldLevel) bool {
	d, ok := parseDecimalField(fl)
	return ok && d.IsPositive()
}

func nonNegativeDecimal(fl validator.FieldLevel) bool {
	d, ok := parseDecimalField(fl)
	return ok && !d.IsNegative()
}

func oneOfList(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, fl.Field().String())
	}
}
