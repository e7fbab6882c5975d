package utils

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"travel-agency/internal/data/entity"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
		return entity.IsValidIcon(fl.Field().String())
	})
	v.RegisterValidation("palette", func(fl validator.FieldLevel) bool {
		return entity.IsPaletteColor(fl.Field().String())
	})

	return v
}

// FieldError is one failed rule on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateStruct returns the field errors of data ordered by field name, or
// nil when data is valid.
func ValidateStruct(data interface{}) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldPath(fe),
			Message: getErrorMessage(fe),
		})
	}
	sort.SliceStable(fieldErrors, func(i, j int) bool {
		return fieldErrors[i].Field < fieldErrors[j].Field
	})

	return fieldErrors
}

// fieldPath drops the root struct name from the namespace, e.g.
// "Homepage.hero.title" becomes "hero.title".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum is %s", err.Param())
	case "gtefield":
		return fmt.Sprintf("Must be greater than or equal to %s", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "datetime":
		return fmt.Sprintf("Must be a date in the format %s", err.Param())
	case "icon":
		return "Unsupported icon"
	case "palette":
		return "Must be a palette color"
	case "eq":
		return fmt.Sprintf("Must be %s", err.Param())
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// formats validation errors into single string
func FormatValidationErrors(errors []FieldError) string {
	msgs := make([]string, 0, len(errors))
	for _, fe := range errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(msgs, "; ")
}

// ValidationError carries the structured result of a failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed: " + FormatValidationErrors(e.Fields)
}

// Validate returns a *ValidationError when data breaks any rule.
func Validate(data interface{}) error {
	if fields := ValidateStruct(data); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
