//go:build unit

package user_test

import (
	"testing"

	"classroom-reservations/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, s := range []string{"docente", "directivo", "admin"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := user.NewRole("viewer")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestCanApprove(t *testing.T) {
	assert.False(t, user.RoleTeacher.CanApprove())
	assert.True(t, user.RoleDirector.CanApprove())
	assert.True(t, user.RoleAdmin.CanApprove())
}
