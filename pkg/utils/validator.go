package utils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct runs the shared validator against a request DTO.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}
