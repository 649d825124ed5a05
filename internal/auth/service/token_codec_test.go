package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/karaoke/internal/auth/domain"
	apperrors "github.com/allisson/karaoke/internal/errors"
)

const testSecret = "test-signing-secret"

func newTestCodec(t *testing.T) *TokenCodec {
	t.Helper()

	codec, err := NewTokenCodec(testSecret, 24*time.Hour)
	require.NoError(t, err)
	return codec
}

func TestNewTokenCodec(t *testing.T) {
	t.Run("rejects empty secret", func(t *testing.T) {
		_, err := NewTokenCodec("", 24*time.Hour)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive ttl", func(t *testing.T) {
		_, err := NewTokenCodec(testSecret, 0)
		assert.Error(t, err)
	})
}

func TestIssueAndDecodeRoundTrip(t *testing.T) {
	codec := newTestCodec(t)
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return issuedAt }

	subjects := []string{"u1", "01890a5d-ac96-774b-bcce-b302099a8057", "user@example.com"}
	for _, subject := range subjects {
		token, err := codec.Issue(subject)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := codec.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, subject, claims.UserID)
		assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
		assert.Equal(t, int64(86400), claims.ExpiresAt.Unix()-claims.IssuedAt.Unix())
	}
}

func TestIssueEmptySubject(t *testing.T) {
	codec := newTestCodec(t)

	_, err := codec.Issue("")
	assert.ErrorIs(t, err, domain.ErrEmptySubject)
}

func TestDecodeRejectsMutatedToken(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Issue("u1")
	require.NoError(t, err)

	// Flip one character at several positions (header, payload, signature).
	positions := []int{0, len(token) / 2, len(token) - 1}
	for _, pos := range positions {
		mutated := []byte(token)
		if mutated[pos] == 'a' {
			mutated[pos] = 'b'
		} else {
			mutated[pos] = 'a'
		}

		_, err := codec.Decode(string(mutated))
		assert.Error(t, err, "position %d", pos)
		assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized), "position %d", pos)
	}
}

func TestDecodeRejectsExpiredToken(t *testing.T) {
	codec := newTestCodec(t)
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return issuedAt }

	token, err := codec.Issue("u1")
	require.NoError(t, err)

	// Advance the clock past expiry; the signature is still correct.
	codec.now = func() time.Time { return issuedAt.Add(24*time.Hour + time.Second) }

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Issue("u1")
	require.NoError(t, err)

	otherCodec, err := NewTokenCodec("another-secret", 24*time.Hour)
	require.NoError(t, err)

	_, err = otherCodec.Decode(token)
	assert.ErrorIs(t, err, domain.ErrTokenSignatureInvalid)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	codec := newTestCodec(t)

	for _, garbage := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := codec.Decode(garbage)
		assert.ErrorIs(t, err, domain.ErrTokenMalformed, garbage)
	}
}
