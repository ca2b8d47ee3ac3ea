// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "tasklist/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *playground.Validate
}

// New creates the request validator installed on the echo server.
func New() *echoValidator {
	return &echoValidator{validate: playground.New()}
}

// Validate implements echo.Validator. Failures surface as the generic
// validation error so the error middleware maps them to 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
