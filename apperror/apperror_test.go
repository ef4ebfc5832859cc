package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_StatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"bad request", BadRequest("x"), http.StatusBadRequest},
		{"not found", NotFound("x"), http.StatusNotFound},
		{"conflict", Conflict("x"), http.StatusConflict},
		{"unauthorized", Unauthorized("x"), http.StatusUnauthorized},
		{"forbidden", Forbidden("x"), http.StatusForbidden},
		{"internal", Internal("x", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestError_Error(t *testing.T) {
	cause := errors.New("cause")
	err := Internal("Fail to update post!", cause)

	assert.Equal(t, "Fail to update post!: cause", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "This post is not found!", NotFound("This post is not found!").Error())
}
