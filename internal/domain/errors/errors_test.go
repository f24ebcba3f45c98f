package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrOrderNotFound.WithDetails("order abc")

	assert.True(t, stderrors.Is(detailed, ErrOrderNotFound))
	assert.False(t, stderrors.Is(detailed, ErrTicketNotFound))
	assert.Equal(t, "order abc", detailed.Details())
	assert.Equal(t, http.StatusNotFound, detailed.HTTPCode())
}

func TestBaseError_WrapMessagePreservesAppError(t *testing.T) {
	wrapped := ErrInvalidCredentials.WrapMessage("sign in")

	var appErr AppError
	assert.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
	assert.Equal(t, "Invalid email or password.", appErr.Message())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert order")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert order", err.Details())
	assert.ErrorIs(t, err, cause)
}
