package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "email", "error": "must be a valid email address" }
type FieldError struct {
	// Field is the JSON key the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error().
// The global error handler renders it into the response envelope:
//   - Status becomes status_code (and the reason phrase becomes message).
//   - Message becomes data, unless Status is a 5xx.
//   - Errors is attached when the failure is field-level validation.
//
// Code is a machine-friendly code (e.g. "PERSON_ALREADY_EXISTS") used in logs.
// HideMessage keeps Message in the logs only; data is rendered as null.
type HTTPError struct {
	Code        string
	Message     string
	Status      int
	HideMessage bool

	// Errors holds field-level validation errors.
	Errors []FieldError
}

// Error makes *HTTPError satisfy the built-in `error` interface.
// It returns the Message, so printing/logging the error shows the message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// It only checks whether the other thing is the same *type* (*HTTPError),
// it does NOT compare Code/Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:        e.Code,
		Message:     message,
		Status:      e.Status,
		HideMessage: e.HideMessage,
		Errors:      e.Errors,
	}
}

// WithoutMessage returns a *copy* of this HTTPError whose message is not sent
// to the client.
func (e *HTTPError) WithoutMessage() *HTTPError {
	c := e.WithMessage(e.Message)
	c.HideMessage = true
	return c
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
