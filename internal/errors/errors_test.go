package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("wraps error with context", func(t *testing.T) {
		err := Wrap(ErrNotFound, "song lookup")
		assert.Error(t, err)
		assert.Equal(t, "song lookup: not found", err.Error())
		assert.True(t, Is(err, ErrNotFound))
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "context"))
	})

	t.Run("preserves chain through multiple wraps", func(t *testing.T) {
		err := Wrap(Wrap(ErrConflict, "inner"), "outer")
		assert.True(t, Is(err, ErrConflict))
		assert.Equal(t, "outer: inner: conflict", err.Error())
	})
}

func TestIs(t *testing.T) {
	assert.True(t, Is(ErrUnauthorized, ErrUnauthorized))
	assert.False(t, Is(ErrUnauthorized, ErrForbidden))
	assert.False(t, Is(nil, ErrNotFound))
}

func TestNew(t *testing.T) {
	err := New("boom")
	assert.EqualError(t, err, "boom")
}
