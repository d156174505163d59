//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"classroom-reservations/internal/domain/user"
	"classroom-reservations/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	userID := uuid.New()

	t.Run("round trip keeps user and role", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleDirector)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "directivo", claims.Role)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken(userID, user.RoleTeacher)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := jwt.NewService("secret", -time.Minute).GenerateToken(userID, user.RoleTeacher)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
