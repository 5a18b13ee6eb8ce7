package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCodecRoundTrip(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	token, err := codec.Sign("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := codec.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestParseRejectsBadTokens(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	t.Run("empty token", func(t *testing.T) {
		_, err := codec.Parse("")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := codec.Parse("not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered token", func(t *testing.T) {
		token, err := codec.Sign("user-123")
		require.NoError(t, err)

		_, err = codec.Parse(token + "x")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenCodec("another-secret")
		token, err := other.Sign("user-123")
		require.NoError(t, err)

		_, err = codec.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty user id claim", func(t *testing.T) {
		token, err := codec.Sign("")
		require.NoError(t, err)

		_, err = codec.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	for _, header := range []string{"", "abc.def.ghi", "Basic abc", "Bearer ", "bearer abc.def.ghi"} {
		_, err := ExtractBearerToken(header)
		assert.ErrorIs(t, err, ErrInvalidFormat, header)
	}
}
