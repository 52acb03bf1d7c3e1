package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// decimalGT0 validates that a string field parses as a decimal greater than
// zero. Amounts travel as strings so they are never rounded through float64;
// this keeps the binding layer from accepting obvious garbage.
var decimalGT0 validator.Func = func(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && d.GreaterThan(decimal.Zero)
}

// RegisterCustomValidators attaches custom binding validators to gin's
// validator engine. Must run before the first request is bound.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("decimalgt0", decimalGT0)
	}
}
