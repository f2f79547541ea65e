// Package validation plugs go-playground struct validation into echo's
// Validator hook. It only covers DTO shape at the binding edge; the
// ordered submission rules live in service/order.
package validation

import (
	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New()}
}

func (v *Validator) Validate(i any) error {
	return v.v.Struct(i)
}
