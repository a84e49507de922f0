// Package validator plugs go-playground validation into echo's binding.
package validator

import (
	domainerrors "sharefit/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator for echo.
type Validator struct {
	validate *playground.Validate
}

// New creates the request validator.
func New() *Validator {
	return &Validator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Validation failures surface as the
// shared validation error so the error handler maps them to 400.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapCause(err, "request validation failed")
	}

	return nil
}
