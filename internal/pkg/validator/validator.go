package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Text that is more than whitespace
	validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"_": err.Error()}
	}

	fieldErrors := make(map[string]string)
	for _, fe := range validationErrors {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			fieldErrors[field] = "This field is required"
		case "notblank":
			fieldErrors[field] = "This field must not be blank"
		case "gtefield":
			fieldErrors[field] = "Value must not be before " + fe.Param()
		case "max":
			fieldErrors[field] = "Value is too long (max: " + fe.Param() + ")"
		default:
			fieldErrors[field] = "Invalid value"
		}
	}

	return fieldErrors
}

// Error reports the rejected fields of one record. It unwraps to Kind so
// callers can match a domain sentinel with errors.Is.
type Error struct {
	Kind   error
	Fields map[string]string
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("%v: %s", e.Kind, strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Check validates s and returns an *Error wrapping kind when any field is rejected.
func Check(kind error, s interface{}) error {
	if fields := Validate(s); fields != nil {
		return &Error{Kind: kind, Fields: fields}
	}
	return nil
}
