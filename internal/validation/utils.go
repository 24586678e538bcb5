package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strings"

	"github.com/deppfellow/persons-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required"`)
//   - Implement Validate() error that runs validation.Struct(req)
type Validatable interface {
	Validate() error
}

// JSONBody is a Validatable that must arrive as a JSON object body
// containing every key returned by RequiredFields.
type JSONBody interface {
	Validatable
	RequiredFields() []string
}

var errNotJSON = errs.NewBadRequestError("request body must be JSON", nil, nil)

// ValidateBody checks the raw body of a request:
//
//  1. missing, empty or non-JSON body (or non-JSON Content-Type) -> 400
//  2. JSON that is not an object -> 400
//  3. any key of required absent -> 422 naming every missing key
//
// On success it returns the decoded top-level object.
func ValidateBody(contentType string, body []byte, required []string) (map[string]json.RawMessage, error) {
	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || !(mediaType == echo.MIMEApplicationJSON || strings.HasSuffix(mediaType, "+json")) {
			return nil, errNotJSON
		}
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return nil, errNotJSON
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &data); err != nil || data == nil {
		return nil, errs.NewBadRequestError("request body must be a JSON object", nil, nil)
	}

	var missing []string
	for _, field := range required {
		if _, ok := data[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, errs.MissingFieldsError(missing)
	}

	return data, nil
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. JSONBody payloads: the raw body goes through ValidateBody, then is decoded into payload.
//     Other payloads: c.Bind populates path/query params (and body, if any).
//  2. payload.Validate() applies validation rules.
//  3. Returns *errs.HTTPError (400 or 422) describing what went wrong.
//
// NOTE: payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if body, ok := payload.(JSONBody); ok {
		if err := bindJSONBody(c, body); err != nil {
			return err
		}
	} else if err := c.Bind(payload); err != nil {
		message := "invalid request"
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if msg, ok := echoErr.Message.(string); ok {
				message = msg
			}
		}
		return errs.NewBadRequestError(message, nil, nil)
	}

	if fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.ValidationError(fieldErrors)
	}

	return nil
}

func bindJSONBody(c echo.Context, payload JSONBody) error {
	req := c.Request()

	var body []byte
	if req.Body != nil && req.Body != http.NoBody {
		var err error
		body, err = io.ReadAll(req.Body)
		if err != nil {
			return errNotJSON
		}
		// Restore the body so later readers (e.g. logging) still see it.
		req.Body = io.NopCloser(bytes.NewReader(body))
	}

	if _, err := ValidateBody(req.Header.Get(echo.HeaderContentType), body, payload.RequiredFields()); err != nil {
		return err
	}

	if err := json.Unmarshal(body, payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return errs.ValidationError([]errs.FieldError{{
				Field: typeErr.Field,
				Error: fmt.Sprintf("must be a %s", jsonTypeName(typeErr.Type)),
			}})
		}
		return errNotJSON
	}

	return nil
}

func jsonTypeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return "number"
	}
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) []errs.FieldError {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return nil
}

func extractValidationError(err error) []errs.FieldError {
	var fieldErrors []errs.FieldError

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []errs.FieldError{{Field: "body", Error: err.Error()}}
	}

	for _, err := range validationErrors {
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "person_email", "email":
			msg = "must be a valid email address"

		case "datetime":
			msg = "must be a date formatted as YYYY-MM-DD"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s:%s", err.Tag(), err.Param())
			} else {
				msg = err.Tag()
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: err.Field(),
			Error: msg,
		})
	}

	return fieldErrors
}
