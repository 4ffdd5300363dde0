package validations

import (
	"github.com/ChokeGuy/coin-change/util"
	"github.com/go-playground/validator/v10"
)

// Denomination validation function
var ValidDenomination validator.Func = func(fieldLevel validator.FieldLevel) bool {
	if denomination, ok := fieldLevel.Field().Interface().(float64); ok {
		return util.IsSupportedDenomination(denomination)
	}
	return false
}
