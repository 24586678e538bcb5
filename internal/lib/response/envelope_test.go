package response

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/deppfellow/persons-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUsesReasonPhrase(t *testing.T) {
	tests := map[int]string{
		http.StatusOK:                  "OK",
		http.StatusCreated:             "Created",
		http.StatusBadRequest:          "Bad Request",
		http.StatusNotFound:            "Not Found",
		http.StatusMethodNotAllowed:    "Method Not Allowed",
		http.StatusConflict:            "Conflict",
		http.StatusUnprocessableEntity: "Unprocessable Entity",
		http.StatusInternalServerError: "Internal Server Error",
	}

	for status, message := range tests {
		env := New(status, nil)
		assert.Equal(t, status, env.StatusCode)
		assert.Equal(t, message, env.Message)
	}
}

func TestFromError(t *testing.T) {
	t.Run("client error exposes message", func(t *testing.T) {
		env := FromError(errs.NewConflictError("A Person with this Email already exists", nil))

		assert.Equal(t, http.StatusConflict, env.StatusCode)
		assert.Equal(t, "Conflict", env.Message)
		assert.Equal(t, "A Person with this Email already exists", env.Data)
	})

	t.Run("hidden message renders null data", func(t *testing.T) {
		env := FromError(errs.NewNotFoundError("no person with national_id 1", nil).WithoutMessage())

		body, err := json.Marshal(env)
		require.NoError(t, err)
		assert.JSONEq(t, `{"status_code":404,"message":"Not Found","data":null}`, string(body))
	})

	t.Run("server error hides details", func(t *testing.T) {
		httpErr := errs.NewInternalServerError().WithMessage("pool exhausted")
		env := FromError(httpErr)

		assert.Nil(t, env.Data)
		assert.Equal(t, "Internal Server Error", env.Message)
	})

	t.Run("field errors attached", func(t *testing.T) {
		env := FromError(errs.MissingFieldsError([]string{"email"}))

		body, err := json.Marshal(env)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"status_code": 422,
			"message": "Unprocessable Entity",
			"data": "missing required fields: email",
			"errors": [{"field": "email", "error": "is required"}]
		}`, string(body))
	})
}
