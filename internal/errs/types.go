package errs

import (
	"fmt"
	"net/http"
	"strings"
)

// newHTTPError builds an HTTPError whose default code is derived from the
// status text, e.g. 404 => "NOT_FOUND". A non-nil code overrides it.
func newHTTPError(status int, message string, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(status))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  status,
		Errors:  errors,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Used for "you sent garbage" cases: missing body, body that is not JSON.
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	return newHTTPError(http.StatusBadRequest, message, code, errors)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message, code, nil)
}

// NewMethodNotAllowedError creates a 405 Method Not Allowed HTTPError.
func NewMethodNotAllowedError(method string) *HTTPError {
	return newHTTPError(
		http.StatusMethodNotAllowed,
		fmt.Sprintf("method %s is not allowed for this route", method),
		nil,
		nil,
	)
}

// NewConflictError creates a 409 Conflict HTTPError.
//
// Returned when a write would break a unique constraint (duplicate email or national id).
func NewConflictError(message string, code *string) *HTTPError {
	return newHTTPError(http.StatusConflict, message, code, nil)
}

// NewUnprocessableEntityError creates a 422 Unprocessable Entity HTTPError.
//
// The body was JSON, but its content is not acceptable: missing keys,
// wrong types, invalid email or date.
func NewUnprocessableEntityError(message string, code *string, errors []FieldError) *HTTPError {
	return newHTTPError(http.StatusUnprocessableEntity, message, code, errors)
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError() *HTTPError {
	return newHTTPError(http.StatusTooManyRequests, "rate limit exceeded, try again later", nil, nil)
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// Note:
//   - message is the generic status text, not the real internal error message.
//   - clients never receive internal details, those go to the logs only.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), nil, nil)
}

// MissingFieldsError reports required keys absent from a request body.
//
//	missing required fields: full_name, email
func MissingFieldsError(fields []string) *HTTPError {
	fieldErrors := make([]FieldError, 0, len(fields))
	for _, field := range fields {
		fieldErrors = append(fieldErrors, FieldError{Field: field, Error: "is required"})
	}

	return NewUnprocessableEntityError(
		"missing required fields: "+strings.Join(fields, ", "),
		nil,
		fieldErrors,
	)
}

// ValidationError converts field errors into a 422 HTTPError.
//
//	return errs.ValidationError(fieldErrors)
func ValidationError(fieldErrors []FieldError) *HTTPError {
	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		parts = append(parts, fe.Field+" "+fe.Error)
	}

	return NewUnprocessableEntityError("Validation failed: "+strings.Join(parts, "; "), nil, fieldErrors)
}
