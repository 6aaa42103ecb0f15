//go:build unit

package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientToken(t *testing.T) {
	svc := NewService("secret", time.Hour)

	t.Run("round trip keeps client id", func(t *testing.T) {
		id := uuid.New()
		token, err := svc.GenerateClientToken(id)
		require.NoError(t, err)

		got, err := svc.ValidateClientToken(token)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("foreign secret is rejected", func(t *testing.T) {
		token, err := NewService("other", time.Hour).GenerateClientToken(uuid.New())
		require.NoError(t, err)

		_, err = svc.ValidateClientToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		past := NewService("secret", time.Minute)
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := past.GenerateClientToken(uuid.New())
		require.NoError(t, err)

		_, err = svc.ValidateClientToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateClientToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
