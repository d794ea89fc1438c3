package token

import (
	"tokencore/core/errors"
	"tokencore/core/types"
)

// requireUnpaused is step 1 of the mutating-entry-point prelude gate.
func (t *TokenCore) requireUnpaused() error {
	paused, err := t.state.Paused.IsPaused()
	if err != nil {
		return err
	}
	if paused {
		return errors.ErrContractIsPaused
	}
	return nil
}

// requireNotBlacklisted is step 2 of the prelude gate: the caller itself
// must not hold Role::Blacklisted.
func (t *TokenCore) requireNotBlacklisted(addr types.Address) error {
	blacklisted, err := t.hasRole(types.RoleBlacklisted, addr)
	if err != nil {
		return err
	}
	if blacklisted {
		return errors.ErrInsufficientRights
	}
	return nil
}

// requireRole fails InsufficientRights unless addr holds role.
func (t *TokenCore) requireRole(role types.Role, addr types.Address) error {
	ok, err := t.hasRole(role, addr)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrInsufficientRights
	}
	return nil
}

// prelude runs the universal mutating-entry-point gate: unpaused, then
// caller not blacklisted. Operation-specific role and numeric checks are
// the caller's responsibility, run after this returns nil.
func (t *TokenCore) prelude(caller types.Address) error {
	if err := t.requireUnpaused(); err != nil {
		return err
	}
	return t.requireNotBlacklisted(caller)
}
