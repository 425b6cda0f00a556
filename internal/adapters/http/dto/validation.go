package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Binding and validation failures.
var (
	ErrValidation = errors.New("validation failed")
	ErrBinding    = errors.New("binding failed")
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator. Field names in errors use the
// json tag, falling back to the form tag for query structs.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, key := range []string{"json", "form"} {
				name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
				if name == "-" {
					return ""
				}

				if name != "" {
					return name
				}
			}

			return fld.Name
		})

		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})

	return validate
}

// Validate checks v's struct tags.
func Validate(v any) error {
	if err := Validator().Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

// BindAndValidate binds the JSON body into v and validates it. An empty body
// binds as the zero value so optional-field requests still validate.
func BindAndValidate(c *gin.Context, v any) error {
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(v); err != nil {
			return fmt.Errorf("%w: %w", ErrBinding, err)
		}
	}

	return Validate(v)
}

// BindQueryAndValidate binds query parameters into v and validates it.
func BindQueryAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindQuery(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// ValidationErrors flattens validator failures into field → message.
func ValidationErrors(err error) map[string]string {
	out := make(map[string]string)

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, fe := range errs {
			out[fe.Field()] = validationMessage(fe)
		}
	}

	return out
}

// IsValidationError reports whether err carries validator failures.
func IsValidationError(err error) bool {
	var errs validator.ValidationErrors
	return errors.As(err, &errs)
}

var validationMessages = map[string]string{
	"required": "this field is required",
	"notblank": "must not be blank",
	"gte":      "must be greater than or equal to {param}",
	"lte":      "must be less than or equal to {param}",
	"gt":       "must be greater than {param}",
	"lt":       "must be less than {param}",
	"oneof":    "must be one of: {param}",
}

func validationMessage(fe validator.FieldError) string {
	tag, param := fe.Tag(), fe.Param()

	if tag == "min" || tag == "max" {
		unit := ""
		if fe.Kind() == reflect.String {
			unit = " characters"
		}

		if tag == "min" {
			return "must be at least " + param + unit
		}

		return "must be at most " + param + unit
	}

	if msg, ok := validationMessages[tag]; ok {
		return strings.ReplaceAll(msg, "{param}", param)
	}

	return "failed validation: " + tag
}
