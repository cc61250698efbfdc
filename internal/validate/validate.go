// Package validate runs struct-tag validation and reports failures as
// field-level messages keyed by the JSON field name.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/MrJamesThe3rd/costbook/internal/apperr"
)

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}

			return name
		})
	})

	return v
}

// Struct validates s and returns an *apperr.ValidationError on failure.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating: %w", err)
	}

	verr := apperr.NewValidation()
	for _, fe := range fieldErrs {
		verr.Add(fieldPath(fe), message(fe))
	}

	return verr
}

// fieldPath drops the root struct name: "Params.allocations[0].cost_line_id" -> "allocations[0].cost_line_id".
func fieldPath(fe validator.FieldError) string {
	if _, rest, ok := strings.Cut(fe.Namespace(), "."); ok {
		return rest
	}

	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "number":
		return "must contain digits only"
	case "len":
		return fmt.Sprintf("must be exactly %s digits", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s digits", fe.Param())
	case "required_without":
		return "is required when " + strings.ToLower(fe.Param()) + " is empty"
	case "max":
		return fmt.Sprintf("must have at most %s entries", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
