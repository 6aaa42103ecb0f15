//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"carseat-rental/internal/pkg/jwt"
	"carseat-rental/internal/usecase"
	"carseat-rental/tests/common/builder"
	usecasemock "carseat-rental/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientResolver(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.NewService("client-resolver-secret", time.Hour)

	t.Run("valid token keeps the identity and loads its session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := usecasemock.NewMockSessionStore(ctrl)
		resolver := usecase.NewClientResolver(jwtService, sessions)

		clientID := uuid.New()
		token, err := jwtService.GenerateClientToken(clientID)
		require.NoError(t, err)
		sess := builder.NewUserBuilder().BuildSession()
		sessions.EXPECT().Load(ctx, clientID).Return(&sess, nil).Times(1)

		client, err := resolver.Resolve(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, clientID, client.ID)
		assert.Equal(t, token, client.Token)
		assert.False(t, client.Minted)
		require.NotNil(t, client.Session)
		assert.Equal(t, sess.UserID, client.Session.UserID)
	})

	t.Run("valid token without session is anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := usecasemock.NewMockSessionStore(ctrl)
		resolver := usecase.NewClientResolver(jwtService, sessions)

		clientID := uuid.New()
		token, err := jwtService.GenerateClientToken(clientID)
		require.NoError(t, err)
		sessions.EXPECT().Load(ctx, clientID).Return(nil, nil).Times(1)

		client, err := resolver.Resolve(ctx, token)
		require.NoError(t, err)
		assert.Nil(t, client.Session)
	})

	for name, token := range map[string]string{
		"missing token":          "",
		"garbage token":          "not-a-jwt",
		"token from another key": mustToken(t, jwt.NewService("other-secret", time.Hour)),
	} {
		t.Run(name+" mints a fresh identity", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sessions := usecasemock.NewMockSessionStore(ctrl)
			resolver := usecase.NewClientResolver(jwtService, sessions)

			client, err := resolver.Resolve(ctx, token)
			require.NoError(t, err)
			assert.True(t, client.Minted)
			assert.NotEqual(t, uuid.Nil, client.ID)
			assert.Nil(t, client.Session)

			id, err := jwtService.ValidateClientToken(client.Token)
			require.NoError(t, err)
			assert.Equal(t, client.ID, id)
		})
	}

	t.Run("session store failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := usecasemock.NewMockSessionStore(ctrl)
		resolver := usecase.NewClientResolver(jwtService, sessions)

		clientID := uuid.New()
		token, err := jwtService.GenerateClientToken(clientID)
		require.NoError(t, err)
		boom := errors.New("redis down")
		sessions.EXPECT().Load(ctx, clientID).Return(nil, boom).Times(1)

		_, err = resolver.Resolve(ctx, token)
		assert.ErrorIs(t, err, boom)
	})
}

func mustToken(t *testing.T, svc *jwt.Service) string {
	t.Helper()
	token, err := svc.GenerateClientToken(uuid.New())
	require.NoError(t, err)
	return token
}
