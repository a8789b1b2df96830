package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks struct tags on a request payload. A nil return means the
// payload passed; otherwise the map carries field-level failure details.
func Validate(payload any) map[string]any {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	details := map[string]any{}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			details[fe.Field()] = fe.Tag()
		}
	} else {
		details["payload"] = err.Error()
	}
	return details
}
