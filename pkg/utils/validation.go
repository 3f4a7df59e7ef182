package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CheckVar reports whether field satisfies the validator tag, e.g. "gte=1888".
func CheckVar(field any, tag string) bool {
	return validate.Var(field, tag) == nil
}
