package customer_test

import (
	"testing"

	"quickcourier/internal/core/domain/model/customer"
	"quickcourier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("should create valid user", func(t *testing.T) {
		u, err := customer.NewUser("maria@example.com", "María García", customer.RoleCustomer)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "maria@example.com", u.Email())
		assert.Equal(t, customer.RoleCustomer, u.Role())
		assert.True(t, u.IsActive())
	})

	t.Run("should fail with malformed email", func(t *testing.T) {
		_, err := customer.NewUser("not-an-email", "María García", customer.RoleCustomer)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("should fail with unknown role", func(t *testing.T) {
		_, err := customer.NewUser("maria@example.com", "María García", customer.RoleUnknown)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "role")
	})

	t.Run("should fail validation for zero value user", func(t *testing.T) {
		var u customer.User

		require.Error(t, u.Validate())
		assert.Equal(t, customer.ErrUserIsNotConstructed, u.Validate())
	})
}

func TestUser_CanPlaceOrders(t *testing.T) {
	restore := func(role customer.Role, active bool) *customer.User {
		u, err := customer.RestoreUser(kernel.NewUUID(), "maria@example.com", "María García", role, active)
		require.NoError(t, err)
		return u
	}

	t.Run("active customer can place orders", func(t *testing.T) {
		assert.True(t, restore(customer.RoleCustomer, true).CanPlaceOrders())
	})

	t.Run("inactive customer cannot place orders", func(t *testing.T) {
		assert.False(t, restore(customer.RoleCustomer, false).CanPlaceOrders())
	})

	t.Run("admin cannot place orders", func(t *testing.T) {
		assert.False(t, restore(customer.RoleAdmin, true).CanPlaceOrders())
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("parses persisted representations", func(t *testing.T) {
		role, err := customer.RoleFromString("CUSTOMER")
		require.NoError(t, err)
		assert.Equal(t, customer.RoleCustomer, role)

		role, err = customer.RoleFromString("ADMIN")
		require.NoError(t, err)
		assert.Equal(t, customer.RoleAdmin, role)
	})

	t.Run("rejects unknown representations", func(t *testing.T) {
		_, err := customer.RoleFromString("SUPERUSER")
		require.Error(t, err)
	})
}

func TestNewAddress(t *testing.T) {
	userID := kernel.NewUUID()

	t.Run("should create valid address", func(t *testing.T) {
		a, err := customer.NewAddress(userID, "Calle 45 #12-34", "Bogotá", "Norte")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "Norte", a.Zone())
		assert.True(t, a.BelongsTo(userID))
		assert.False(t, a.BelongsTo(kernel.NewUUID()))
	})

	t.Run("should fail with empty street", func(t *testing.T) {
		_, err := customer.NewAddress(userID, "", "Bogotá", "Norte")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "street")
	})

	t.Run("should fail with empty zone", func(t *testing.T) {
		_, err := customer.NewAddress(userID, "Calle 45 #12-34", "Bogotá", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "zone")
	})

	t.Run("should fail validation for zero value address", func(t *testing.T) {
		var a customer.Address

		require.Error(t, a.Validate())
		assert.Equal(t, customer.ErrAddressIsNotConstructed, a.Validate())
	})
}
