// Package response defines the JSON envelope every endpoint answers with.
package response

import (
	"net/http"

	"github.com/deppfellow/persons-api/internal/errs"
)

// Envelope is the uniform response body:
//
//	{ "status_code": 200, "message": "OK", "data": ... }
//
// Message is always the HTTP reason phrase. Errors is only present on
// field-level validation failures.
type Envelope struct {
	StatusCode int               `json:"status_code"`
	Message    string            `json:"message"`
	Data       any               `json:"data"`
	Errors     []errs.FieldError `json:"errors,omitempty"`
}

// New wraps data for the given status.
func New(status int, data any) Envelope {
	return Envelope{
		StatusCode: status,
		Message:    http.StatusText(status),
		Data:       data,
	}
}

// FromError renders an HTTPError. 5xx errors never expose their message.
func FromError(err *errs.HTTPError) Envelope {
	env := New(err.Status, nil)
	if err.Status >= http.StatusInternalServerError {
		return env
	}

	if !err.HideMessage {
		env.Data = err.Message
	}
	env.Errors = err.Errors

	return env
}
