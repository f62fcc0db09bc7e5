// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// Validator wraps a validator.Validate instance for Echo.
type Validator struct {
	validate *validator.Validate
}

// New creates a request validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
