package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCodeMatchesWrappedErrors(t *testing.T) {
	base := WrapError(ErrCodePersistence, "write failed", errors.New("disk full"))
	wrapped := fmt.Errorf("saving products: %w", base)

	assert.True(t, IsCode(wrapped, ErrCodePersistence))
	assert.False(t, IsCode(wrapped, ErrCodeNotFound))
	assert.False(t, IsCode(errors.New("plain"), ErrCodePersistence))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapError(ErrCodePersistence, "db unavailable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "db unavailable")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCommentStatusTerminal(t *testing.T) {
	assert.False(t, CommentGenerated.Terminal())
	assert.True(t, CommentPosted.Terminal())
	assert.True(t, CommentFailed.Terminal())
}
