package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmcelreavey/todo-li-app/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	err := failure.NotFound("todo not found")
	assert.Equal(t, "todo not found", err.Error())
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "bad request", err: failure.BadRequestFromString("invalid input"), want: http.StatusBadRequest},
		{name: "unauthorized", err: failure.Unauthorized("sign in required"), want: http.StatusUnauthorized},
		{name: "forbidden", err: failure.ErrNotTodoOwner, want: http.StatusForbidden},
		{name: "not found", err: failure.NotFound("todo not found"), want: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("The username is already taken."), want: http.StatusConflict},
		{name: "plain error falls back to 500", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "wrapped failure keeps its code", err: fmt.Errorf("context: %w", failure.NotFound("gone")), want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestIsCode(t *testing.T) {
	assert.True(t, failure.IsCode(failure.NotFound("x"), http.StatusNotFound))
	assert.False(t, failure.IsCode(failure.NotFound("x"), http.StatusConflict))
	assert.False(t, failure.IsCode(errors.New("boom"), http.StatusInternalServerError))
}

func TestNilErrors(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}
