package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/df-fix-backend/internal/domain"
	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/auth"
	authUC "github.com/marcos-nsantos/df-fix-backend/internal/usecase/auth"
)

func newService(t *testing.T, password string) (*authUC.Service, *auth.JWTService) {
	t.Helper()

	hasher := auth.NewPasswordHasher(4)
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	jwtSvc := auth.NewJWTService("test-secret", 15*time.Minute)
	return authUC.NewService(jwtSvc, hasher, hash), jwtSvc
}

func TestService_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, jwtSvc := newService(t, "password123")

		token, err := svc.Login(context.Background(), authUC.LoginInput{
			Operator: "watch-1",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, token.AccessToken)
		assert.True(t, token.ExpiresAt.After(time.Now()))

		operator, err := jwtSvc.ValidateAccessToken(token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "watch-1", operator)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _ := newService(t, "password123")

		token, err := svc.Login(context.Background(), authUC.LoginInput{
			Operator: "watch-1",
			Password: "wrong",
		})

		assert.Nil(t, token)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("missing operator", func(t *testing.T) {
		svc, _ := newService(t, "password123")

		_, err := svc.Login(context.Background(), authUC.LoginInput{Password: "password123"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
