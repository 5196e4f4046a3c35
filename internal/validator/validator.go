// Package validator adapts go-playground/validator to Echo's
// Validator interface and converts tag failures into the field-level
// details array the API's 400 envelope carries.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of the `details` array in a validation
// failure envelope.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RequestValidator implements echo.Validator over a shared
// validator.Validate instance.
type RequestValidator struct {
	validate *validator.Validate
}

// New constructs a RequestValidator. Field names in error details come
// from the json tag so they match what the client actually sent. The
// objectid tag matches the 24-hex-character document id format;
// malformed ids must be rejected before they reach the store.
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return IsObjectID(fl.Field().String())
	})
	return &RequestValidator{validate: v}
}

// Validate checks the struct and returns the raw validator error;
// handlers convert it with Details.
func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.validate.Struct(i)
}

// IsObjectID reports whether s is a 24-character hex string.
func IsObjectID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// Details converts a validation error into the envelope's details
// array. Unknown error shapes collapse into a single generic entry.
func Details(err error) []FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: "Invalid request"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Please provide a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", fe.Field(), fe.Param())
	case "objectid":
		return "Invalid movie ID format"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
