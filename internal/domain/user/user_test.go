package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"punchcard/internal/shared/authorization"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("  alice  ", "Alice@Example.COM", "hash", authorization.RoleUser)
	require.NoError(t, err)

	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, authorization.RoleUser, u.Role)
	assert.True(t, u.IsActive)
}

func TestNewUser_Validation(t *testing.T) {
	_, err := NewUser("", "a@b.com", "hash", authorization.RoleUser)
	assert.Error(t, err)

	_, err = NewUser("alice", "not-an-email", "hash", authorization.RoleUser)
	assert.Error(t, err)

	_, err = NewUser("alice", "a@b.com", "", authorization.RoleUser)
	assert.Error(t, err)
}

func TestNewUser_UnknownRoleDefaultsToUser(t *testing.T) {
	u, err := NewUser("alice", "a@b.com", "hash", authorization.UserRole("superuser"))
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleUser, u.Role)
}

func TestUser_ActivateDeactivate(t *testing.T) {
	u, err := NewUser("alice", "a@b.com", "hash", authorization.RoleUser)
	require.NoError(t, err)

	u.Deactivate()
	assert.False(t, u.IsActive)

	u.Activate()
	assert.True(t, u.IsActive)
}

func TestUser_ChangeRole(t *testing.T) {
	u, err := NewUser("alice", "a@b.com", "hash", authorization.RoleUser)
	require.NoError(t, err)

	require.NoError(t, u.ChangeRole(authorization.RoleAdmin))
	assert.True(t, u.Role.IsAdmin())

	assert.Error(t, u.ChangeRole(authorization.UserRole("superuser")))
	assert.True(t, u.Role.IsAdmin())
}

func TestUser_SetPasswordHash(t *testing.T) {
	u, err := NewUser("alice", "a@b.com", "hash", authorization.RoleUser)
	require.NoError(t, err)

	require.NoError(t, u.SetPasswordHash("newhash"))
	assert.Equal(t, "newhash", u.PasswordHash)

	assert.Error(t, u.SetPasswordHash(""))
	assert.Equal(t, "newhash", u.PasswordHash)
}
