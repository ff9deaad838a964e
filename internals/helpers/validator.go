package helper

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the shared validator and flattens the result into one
// descriptive message for a 400 response.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	missing := make([]string, 0, len(ve))
	for _, fieldErr := range ve {
		missing = append(missing, strings.ToLower(fieldErr.Field()))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(missing, ", "))
}
