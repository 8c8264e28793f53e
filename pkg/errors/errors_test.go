package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithMessagefKeepsIdentity(t *testing.T) {
	err := ErrEntityNotFound.WithMessagef("user with id %d not found", 42)

	assert.True(t, Is(err, ErrEntityNotFound))
	assert.Equal(t, "user with id 42 not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)

	// The sentinel itself must stay untouched.
	assert.Equal(t, "entity not found", ErrEntityNotFound.Message)
}

func TestWithErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := ErrDatabase.WithError(cause)

	assert.True(t, Is(err, ErrDatabase))
	assert.ErrorContains(t, err, "connection refused")
}

func TestSentinelsStayDistinct(t *testing.T) {
	err := ErrTokenExpired.WithError(fmt.Errorf("exp check failed"))
	assert.True(t, Is(err, ErrTokenExpired))
	assert.False(t, Is(err, ErrTokenMalformed))
	assert.False(t, Is(err, ErrTokenSignatureInvalid))
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(ErrForbidden.WithMessagef("vehicle %d belongs to another user", 3))
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPStatus)
	assert.Equal(t, CodeForbidden, appErr.Code)

	_, ok = AsAppError(fmt.Errorf("plain"))
	assert.False(t, ok)
}
