// Package validation configures the validator shared by gin binding and background ingestion.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"bizops-dashboard/internal/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var once sync.Once

// Engine returns gin's validator with the brand rule and JSON field naming installed.
func Engine() *validator.Validate {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		panic("gin binding validator is not go-playground/validator")
	}
	once.Do(func() {
		v.RegisterTagNameFunc(JSONName)
		if err := v.RegisterValidation("brand", func(fl validator.FieldLevel) bool {
			return model.IsBrand(fl.Field().String())
		}); err != nil {
			panic(fmt.Errorf("register brand validation: %w", err))
		}
	})
	return v
}

// JSONName returns the JSON key of a struct field, or "" when it is not serialised.
func JSONName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// Struct validates every field of obj.
func Struct(obj any) error {
	return Engine().Struct(obj)
}

// Partial validates only the named Go struct fields of obj.
func Partial(obj any, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return Engine().StructPartial(obj, fields...)
}

// FieldError is one client-facing validation failure.
type FieldError struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
	Code    string   `json:"code"`
}

// Describe flattens validator errors into FieldErrors. It returns nil when err
// is not a validation failure.
func Describe(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Path:    []string{fe.Field()},
			Message: message(fe),
			Code:    code(fe.Tag()),
		})
	}
	return out
}

func code(tag string) string {
	switch tag {
	case "required":
		return "invalid_type"
	case "gt", "gte", "min":
		return "too_small"
	case "lt", "lte", "max":
		return "too_big"
	case "oneof", "brand":
		return "invalid_enum_value"
	case "email", "ip", "url":
		return "invalid_string"
	default:
		return "custom"
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "gte", "min":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "lt":
		return fmt.Sprintf("Must be less than %s", fe.Param())
	case "lte", "max":
		return fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Invalid enum value. Expected one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "brand":
		return fmt.Sprintf("Invalid brand. Expected one of: %s", strings.Join(model.BrandCodes, ", "))
	case "email":
		return "Invalid email"
	case "ip":
		return "Invalid IP address"
	default:
		return fmt.Sprintf("Failed %s validation", fe.Tag())
	}
}
