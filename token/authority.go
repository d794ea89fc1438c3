package token

import (
	"tokencore/core/errors"
	"tokencore/core/events"
	"tokencore/core/types"
)

// ConfigureController binds controller to minter. Caller must hold
// Role::MasterMinter; neither target may be blacklisted.
func (t *TokenCore) ConfigureController(caller types.Address, emit events.Emitter, controller, minter types.Address) error {
	if err := t.requireRole(types.RoleMasterMinter, caller); err != nil {
		return err
	}
	if err := t.requireNotBlacklisted(controller); err != nil {
		return err
	}
	if err := t.requireNotBlacklisted(minter); err != nil {
		return err
	}
	if err := t.state.Roles.Grant(types.RoleController, controller); err != nil {
		return err
	}
	if err := t.state.Roles.Grant(types.RoleMinter, minter); err != nil {
		return err
	}
	if err := t.state.Controllers.Set(controller, minter); err != nil {
		return err
	}
	emit.Emit(events.ControllerConfigured{Controller: controller, Minter: minter})
	return nil
}

// RemoveController revokes controller's Role::Controller. The binding
// itself is left in place; it is inert once the role check fails.
func (t *TokenCore) RemoveController(caller types.Address, emit events.Emitter, controller types.Address) error {
	if err := t.requireRole(types.RoleMasterMinter, caller); err != nil {
		return err
	}
	if err := t.state.Roles.Revoke(types.RoleController, controller); err != nil {
		return err
	}
	emit.Emit(events.ControllerRemoved{Controller: controller})
	return nil
}

// RemoveMinter revokes the Role::Minter of the minter caller (an
// unblacklisted Controller) manages. minter_allowance is intentionally
// left untouched here (see events.MinterRemoved).
func (t *TokenCore) RemoveMinter(caller types.Address, emit events.Emitter) error {
	if err := t.requireNotBlacklisted(caller); err != nil {
		return err
	}
	if err := t.requireRole(types.RoleController, caller); err != nil {
		return err
	}
	minter, ok, err := t.state.Controllers.Get(caller)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrMissingController
	}
	if err := t.state.Roles.Revoke(types.RoleMinter, minter); err != nil {
		return err
	}
	emit.Emit(events.MinterRemoved{Minter: minter})
	return nil
}

// minterAllowanceOp is the shared shape of configure/increase/decrease
// minter allowance: resolve the managed minter, apply the supplied
// transform, emit MinterConfigured with the result.
func (t *TokenCore) minterAllowanceOp(caller types.Address, emit events.Emitter, apply func(current types.Amount) (types.Amount, error)) error {
	if err := t.requireNotBlacklisted(caller); err != nil {
		return err
	}
	if err := t.requireRole(types.RoleController, caller); err != nil {
		return err
	}
	minter, ok, err := t.state.Controllers.Get(caller)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrMissingController
	}
	if err := t.requireNotBlacklisted(minter); err != nil {
		return err
	}
	current, err := t.state.MinterAllowances.Get(minter)
	if err != nil {
		return err
	}
	updated, err := apply(current)
	if err != nil {
		return err
	}
	if err := t.state.MinterAllowances.Set(minter, updated); err != nil {
		return err
	}
	emit.Emit(events.MinterConfigured{Minter: minter, MinterAllowance: updated})
	return nil
}

// ConfigureMinterAllowance overwrites the managed minter's allowance.
func (t *TokenCore) ConfigureMinterAllowance(caller types.Address, emit events.Emitter, amount types.Amount) error {
	return t.minterAllowanceOp(caller, emit, func(types.Amount) (types.Amount, error) {
		return amount, nil
	})
}

// IncreaseMinterAllowance checked-adds delta onto the managed minter's
// allowance.
func (t *TokenCore) IncreaseMinterAllowance(caller types.Address, emit events.Emitter, delta types.Amount) error {
	return t.minterAllowanceOp(caller, emit, func(current types.Amount) (types.Amount, error) {
		updated, ok := current.CheckedAdd(delta)
		if !ok {
			return types.Amount{}, errors.ErrArithmeticOverflow
		}
		return updated, nil
	})
}

// DecreaseMinterAllowance checked-subs delta from the managed minter's
// allowance.
func (t *TokenCore) DecreaseMinterAllowance(caller types.Address, emit events.Emitter, delta types.Amount) error {
	return t.minterAllowanceOp(caller, emit, func(current types.Amount) (types.Amount, error) {
		updated, ok := current.CheckedSub(delta)
		if !ok {
			return types.Amount{}, errors.ErrArithmeticUnderflow
		}
		return updated, nil
	})
}

// Blacklist grants Role::Blacklisted to account. Caller must hold
// Role::Blacklister.
func (t *TokenCore) Blacklist(caller types.Address, emit events.Emitter, account types.Address) error {
	if err := t.requireRole(types.RoleBlacklister, caller); err != nil {
		return err
	}
	if err := t.state.Roles.Grant(types.RoleBlacklisted, account); err != nil {
		return err
	}
	emit.Emit(events.Blacklist{Account: account})
	return nil
}

// Unblacklist revokes Role::Blacklisted from account. Caller must hold
// Role::Blacklister.
func (t *TokenCore) Unblacklist(caller types.Address, emit events.Emitter, account types.Address) error {
	if err := t.requireRole(types.RoleBlacklister, caller); err != nil {
		return err
	}
	if err := t.state.Roles.Revoke(types.RoleBlacklisted, account); err != nil {
		return err
	}
	emit.Emit(events.Unblacklist{Account: account})
	return nil
}

// UpdateBlacklister replaces the current blacklister. Caller must hold
// Role::Owner. Emits BlacklisterChanged exactly once — the source emits
// it twice (§9 open question 2), treated here as a bug.
func (t *TokenCore) UpdateBlacklister(caller types.Address, emit events.Emitter, newBlacklister types.Address) error {
	if err := t.requireRole(types.RoleOwner, caller); err != nil {
		return err
	}
	old, ok, err := t.state.Blacklister.Get()
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrMissingBlacklister
	}
	if err := t.state.Roles.Revoke(types.RoleBlacklister, old); err != nil {
		return err
	}
	if err := t.state.Blacklister.Set(newBlacklister); err != nil {
		return err
	}
	if err := t.state.Roles.Grant(types.RoleBlacklister, newBlacklister); err != nil {
		return err
	}
	emit.Emit(events.BlacklisterChanged{NewBlacklister: newBlacklister})
	return nil
}

// Pause sets the global pause flag. Caller must be an unblacklisted
// Pauser; pause itself is not pause-gated.
func (t *TokenCore) Pause(caller types.Address, emit events.Emitter) error {
	if err := t.requireNotBlacklisted(caller); err != nil {
		return err
	}
	if err := t.requireRole(types.RolePauser, caller); err != nil {
		return err
	}
	if err := t.state.Paused.Set(true); err != nil {
		return err
	}
	emit.Emit(events.Paused{})
	return nil
}

// Unpause clears the global pause flag. Caller must be an unblacklisted
// Pauser.
func (t *TokenCore) Unpause(caller types.Address, emit events.Emitter) error {
	if err := t.requireNotBlacklisted(caller); err != nil {
		return err
	}
	if err := t.requireRole(types.RolePauser, caller); err != nil {
		return err
	}
	if err := t.state.Paused.Set(false); err != nil {
		return err
	}
	emit.Emit(events.Unpaused{})
	return nil
}
