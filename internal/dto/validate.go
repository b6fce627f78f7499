package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs struct-tag validation and rewrites the first failure into a
// client-facing message.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fieldMessage(verrs[0])
	}
	return err
}

func fieldMessage(fe validator.FieldError) error {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Errorf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Errorf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Errorf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Errorf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Errorf("%s must be one of: %s", field, fe.Param())
	case "email":
		return fmt.Errorf("%s must be a valid email address", field)
	}
	return fmt.Errorf("%s is invalid", field)
}
