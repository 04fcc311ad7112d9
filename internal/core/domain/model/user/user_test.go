package user_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create user with push token", func(t *testing.T) {
		token := "device-token-1"

		u, err := user.NewUser(validID, "Ana", order.RoleBuyer, &token)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(validID))
		assert.Equal(t, "Ana", u.Name())
		assert.Equal(t, order.RoleBuyer, u.Role())
		assert.True(t, u.IsReachable())
		require.NotNil(t, u.PushToken())
		assert.Equal(t, token, *u.PushToken())
	})

	t.Run("should create unreachable user without token", func(t *testing.T) {
		u, err := user.NewUser(validID, "Ana", order.RoleBuyer, nil)

		require.NoError(t, err)
		assert.False(t, u.IsReachable())
		assert.Nil(t, u.PushToken())
	})

	t.Run("should treat empty token as absent", func(t *testing.T) {
		empty := ""

		u, err := user.NewUser(validID, "Ana", order.RoleBuyer, &empty)

		require.NoError(t, err)
		assert.False(t, u.IsReachable())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		u, err := user.NewUser(invalidID, "Ana", order.RoleBuyer, nil)

		require.Error(t, err)
		assert.Nil(t, u)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		u, err := user.NewUser(validID, "", order.RoleBuyer, nil)

		require.Error(t, err)
		assert.Nil(t, u)
	})

	t.Run("should fail with invalid role", func(t *testing.T) {
		u, err := user.NewUser(validID, "Ana", order.RoleUnknown, nil)

		require.Error(t, err)
		assert.Nil(t, u)
	})
}

func TestUser_RegisterPushToken(t *testing.T) {
	t.Run("should store a new token", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "Ana", order.RoleBuyer, nil)
		require.NoError(t, err)

		u.RegisterPushToken("fresh-token")

		assert.True(t, u.IsReachable())
		assert.Equal(t, "fresh-token", *u.PushToken())
	})

	t.Run("should clear the token when empty", func(t *testing.T) {
		token := "old-token"
		u, err := user.NewUser(kernel.NewUUID(), "Ana", order.RoleBuyer, &token)
		require.NoError(t, err)

		u.RegisterPushToken("")

		assert.False(t, u.IsReachable())
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("should fail for nil user", func(t *testing.T) {
		var u *user.User

		require.Error(t, u.Validate())
	})

	t.Run("should fail for zero value user", func(t *testing.T) {
		u := &user.User{}

		require.Error(t, u.Validate())
	})
}
