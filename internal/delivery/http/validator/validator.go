// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	domainerrors "vouch/internal/domain/errors"
)

// echoValidator wraps a validator instance for struct tag validation.
type echoValidator struct {
	validate *playgroundvalidator.Validate
}

// New creates the echo.Validator used by the HTTP server.
func New() *echoValidator {
	return &echoValidator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and maps failures to the shared validation error.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var invalid *playgroundvalidator.InvalidValidationError
		if errors.As(err, &invalid) {
			return errors.WithStack(err)
		}

		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
