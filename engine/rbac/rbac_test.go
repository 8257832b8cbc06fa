package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_Can(t *testing.T) {
	t.Run("Should be monotonic over the rank order for every role pair", func(t *testing.T) {
		for _, current := range AllRoles {
			store := NewStore(current)
			for _, required := range AllRoles {
				expected := current.Rank() >= required.Rank()
				assert.Equal(t, expected, store.Can(required),
					"current=%s required=%s", current, required)
			}
		}
	})

	t.Run("Should fail every check as guest, including the lowest role", func(t *testing.T) {
		store := NewGuestStore()
		for _, required := range AllRoles {
			assert.False(t, store.Can(required), "required=%s", required)
		}
	})

	t.Run("Should rank dj strictly above host", func(t *testing.T) {
		assert.True(t, NewStore(RoleDJ).Can(RoleHost))
		assert.False(t, NewStore(RoleHost).Can(RoleDJ))
	})
}

func TestStore_Roles(t *testing.T) {
	t.Run("Should hold exactly one active role at a time", func(t *testing.T) {
		store := NewStore(RoleSuperAdmin)

		store.SetRole(RoleHost)

		role, ok := store.CurrentRole()
		assert.True(t, ok)
		assert.Equal(t, RoleHost, role)
	})

	t.Run("Should become guest after ClearRole", func(t *testing.T) {
		store := NewStore(RoleOwner)

		store.ClearRole()

		assert.True(t, store.IsGuest())
		_, ok := store.CurrentRole()
		assert.False(t, ok)
	})

	t.Run("Should ignore unknown roles on SetRole", func(t *testing.T) {
		store := NewStore(RoleManager)

		store.SetRole(Role("janitor"))

		role, _ := store.CurrentRole()
		assert.Equal(t, RoleManager, role)
	})

	t.Run("Should fall back to guest for an unknown initial role", func(t *testing.T) {
		store := NewStore(Role("nobody"))

		assert.True(t, store.IsGuest())
	})
}

func TestParse(t *testing.T) {
	t.Run("Should parse every known role and reject the rest", func(t *testing.T) {
		for _, r := range AllRoles {
			parsed, ok := Parse(string(r))
			assert.True(t, ok)
			assert.Equal(t, r, parsed)
		}
		_, ok := Parse("guest")
		assert.False(t, ok)
	})
}
