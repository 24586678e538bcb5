// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or email formats) defined in struct tags
// and extracts validation errors into a format the client can
// understand
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the accepted calendar date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// emailRegex is deliberately loose: something@something.something, nothing more.
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// IsValidEmail reports whether value looks like local@domain.tld.
//
// Only the shape is checked, not the domain or TLD.
func IsValidEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// IsValidDate reports whether value parses exactly as YYYY-MM-DD.
// Out of range months and days are rejected.
func IsValidDate(value string) bool {
	_, err := time.Parse(DateLayout, value)
	return err == nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON (or path param) names instead of Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "param"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})

	_ = v.RegisterValidation("person_email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})

	return v
}

// Struct validates v against its `validate` tags using the shared validator.
func Struct(v any) error {
	return validate.Struct(v)
}
