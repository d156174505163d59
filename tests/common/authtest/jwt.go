//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"classroom-reservations/internal/domain/user"
	"classroom-reservations/internal/pkg/config"
	"classroom-reservations/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the identity provider would.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// Caller is a user identity together with a signed token for it.
type Caller struct {
	ID    uuid.UUID
	Role  user.Role
	Token string
}

func (h *JWTHelper) NewCaller(t *testing.T, role user.Role) Caller {
	t.Helper()
	id := uuid.New()
	return Caller{ID: id, Role: role, Token: h.GenerateToken(t, id, role)}
}
