package serverutils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs the struct's validate tags. Controllers translate the
// failure into their endpoint-specific 400 message.
func ValidateRequest(s interface{}) error {
	return validate.Struct(s)
}
