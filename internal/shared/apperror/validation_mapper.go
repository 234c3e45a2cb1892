package apperror

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// MapValidationError turns the first failed binding rule into a 400 error
// named after the json field.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]

		switch e.Tag() {
		case "required", "notblank":
			return RequiredField(e.Field())
		default:
			return InvalidField(e.Field())
		}
	}

	return ErrInvalidInput
}
