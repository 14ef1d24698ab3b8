package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginFailuresUnwrapToInvalidCredentials(t *testing.T) {
	assert.ErrorIs(t, ErrUnknownLogin, ErrInvalidCredentials)
	assert.ErrorIs(t, ErrBadPassword, ErrInvalidCredentials)
	assert.NotErrorIs(t, ErrUnknownLogin, ErrBadPassword)
}

func TestStorageErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage("insert user", cause)

	assert.True(t, IsStorage(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "insert user")

	wrapped := fmt.Errorf("register: %w", err)
	assert.True(t, IsStorage(wrapped))

	assert.False(t, IsStorage(ErrNotFound))
	assert.False(t, IsStorage(nil))
}
