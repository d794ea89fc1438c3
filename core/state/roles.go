package state

import (
	"tokencore/core/types"
	"tokencore/storage"
)

var roleMember = []byte{1}

// RoleRegistry is the single (role, address) -> bool map-like value every
// authority check reads from, rather than a wrapper type per role.
type RoleRegistry struct {
	store storage.Backend
}

// NewRoleRegistry wraps a storage.Backend as a RoleRegistry.
func NewRoleRegistry(store storage.Backend) *RoleRegistry {
	return &RoleRegistry{store: store}
}

// Has reports whether addr currently holds role.
func (r *RoleRegistry) Has(role types.Role, addr types.Address) (bool, error) {
	data, err := r.store.Get(roleKey(role, addr))
	if err != nil {
		return false, err
	}
	return len(data) > 0, nil
}

// Grant assigns role to addr.
func (r *RoleRegistry) Grant(role types.Role, addr types.Address) error {
	return r.store.Set(roleKey(role, addr), roleMember)
}

// Revoke removes role from addr.
func (r *RoleRegistry) Revoke(role types.Role, addr types.Address) error {
	return r.store.Delete(roleKey(role, addr))
}
