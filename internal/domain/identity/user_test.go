package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates active user with defaults", func(t *testing.T) {
		user, err := NewUser("alice", "Alice@Example.com", "Password123", "", "")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, RoleContactUser, user.Role)
		assert.Equal(t, UserTypeBuyer, user.UserType)
		assert.True(t, user.IsActive)
		assert.True(t, user.IsNew())
		assert.NotEqual(t, "Password123", user.PasswordHash)
	})

	t.Run("rejects short username", func(t *testing.T) {
		_, err := NewUser("ab", "", "Password123", RoleAdmin, UserTypeBuyer)
		assert.ErrorContains(t, err, "at least 3 characters")
	})

	t.Run("rejects weak password", func(t *testing.T) {
		_, err := NewUser("alice", "", "password", RoleAdmin, UserTypeBuyer)
		assert.ErrorContains(t, err, "letter and one number")
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewUser("alice", "", "Password123", Role("overlord"), UserTypeBuyer)
		assert.ErrorContains(t, err, "Unknown role")
	})

	t.Run("rejects bad email", func(t *testing.T) {
		_, err := NewUser("alice", "not-an-email", "Password123", RoleAdmin, UserTypeBuyer)
		assert.ErrorContains(t, err, "Invalid email")
	})
}

func TestUser_VerifyPassword(t *testing.T) {
	user, err := NewUser("bob", "", "Secret123", RoleAccountant, UserTypeAccountant)
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("Secret123"))
	assert.False(t, user.VerifyPassword("secret123"))

	require.NoError(t, user.SetPassword("Another456"))
	assert.True(t, user.VerifyPassword("Another456"))
	assert.False(t, user.VerifyPassword("Secret123"))
}

func TestUser_Flags(t *testing.T) {
	user, err := NewUser("seller1", "", "Password123", RoleAdmin, UserTypeSeller)
	require.NoError(t, err)

	assert.True(t, user.IsAdmin())
	assert.True(t, user.IsSeller())
	assert.False(t, user.IsBuyer())

	require.NoError(t, user.ChangeRole(RoleContactUser, UserTypeBuyer))
	assert.False(t, user.IsAdmin())
	assert.True(t, user.IsBuyer())
}
