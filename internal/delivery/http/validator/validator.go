// Package validator binds go-playground/validator as Echo's request validator.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance for Echo's Validator interface.
type CustomValidator struct {
	validator *playground.Validate
}

// New creates a CustomValidator with struct-tag validation enabled.
func New() *CustomValidator {
	return &CustomValidator{validator: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator.
func (v *CustomValidator) Validate(i any) error {
	return v.validator.Struct(i)
}
