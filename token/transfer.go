package token

import (
	"tokencore/core/errors"
	"tokencore/core/events"
	"tokencore/core/types"
)

// Transfer moves amount from caller to recipient. A zero amount is a
// successful no-op that still emits Transfer.
func (t *TokenCore) Transfer(caller types.Address, emit events.Emitter, recipient types.Address, amount types.Amount) error {
	if err := t.prelude(caller); err != nil {
		return err
	}
	if caller == recipient {
		return errors.ErrCannotTargetSelfUser
	}
	return t.rawTransfer(caller, recipient, amount, emit)
}

// rawTransfer is the shared accounting step behind Transfer and
// TransferFrom: it moves balance and emits Transfer, with no role or
// self-target checks of its own.
func (t *TokenCore) rawTransfer(from, to types.Address, amount types.Amount, emit events.Emitter) error {
	fromBalance, err := t.state.Balances.Get(from)
	if err != nil {
		return err
	}
	if amount.GreaterThan(fromBalance) {
		return errors.ErrInsufficientBalance
	}
	newFrom, ok := fromBalance.CheckedSub(amount)
	if !ok {
		return errors.ErrArithmeticUnderflow
	}
	toBalance, err := t.state.Balances.Get(to)
	if err != nil {
		return err
	}
	newTo, ok := toBalance.CheckedAdd(amount)
	if !ok {
		return errors.ErrArithmeticOverflow
	}
	if err := t.state.Balances.Set(from, newFrom); err != nil {
		return err
	}
	if err := t.state.Balances.Set(to, newTo); err != nil {
		return err
	}
	emit.Emit(events.Transfer{Sender: from, Recipient: to, Amount: amount})
	return nil
}

// Approve overwrites the (caller, spender) allowance to exactly amount.
func (t *TokenCore) Approve(caller types.Address, emit events.Emitter, spender types.Address, amount types.Amount) error {
	if err := t.prelude(caller); err != nil {
		return err
	}
	if caller == spender {
		return errors.ErrCannotTargetSelfUser
	}
	if err := t.requireNotBlacklisted(spender); err != nil {
		return err
	}
	if err := t.state.Allowances.Set(caller, spender, amount); err != nil {
		return err
	}
	emit.Emit(events.SetAllowance{Owner: caller, Spender: spender, Allowance: amount})
	return nil
}

// IncreaseAllowance saturating-adds delta onto the (caller, spender)
// allowance.
func (t *TokenCore) IncreaseAllowance(caller types.Address, emit events.Emitter, spender types.Address, delta types.Amount) error {
	if err := t.prelude(caller); err != nil {
		return err
	}
	if caller == spender {
		return errors.ErrCannotTargetSelfUser
	}
	current, err := t.state.Allowances.Get(caller, spender)
	if err != nil {
		return err
	}
	updated := current.SaturatingAdd(delta)
	if err := t.state.Allowances.Set(caller, spender, updated); err != nil {
		return err
	}
	emit.Emit(events.IncreaseAllowance{Owner: caller, Spender: spender, Allowance: current, IncBy: delta})
	return nil
}

// DecreaseAllowance saturating-subs delta from the (caller, spender)
// allowance. Unlike IncreaseAllowance, there is no self-target check here
// — the source lacks one and §9 flags this as an open question rather
// than silently fixing it.
func (t *TokenCore) DecreaseAllowance(caller types.Address, emit events.Emitter, spender types.Address, delta types.Amount) error {
	if err := t.prelude(caller); err != nil {
		return err
	}
	current, err := t.state.Allowances.Get(caller, spender)
	if err != nil {
		return err
	}
	updated := current.SaturatingSub(delta)
	if err := t.state.Allowances.Set(caller, spender, updated); err != nil {
		return err
	}
	emit.Emit(events.DecreaseAllowance{Owner: caller, Spender: spender, Allowance: current, DecrBy: delta})
	return nil
}

// TransferFrom spends the caller's delegated allowance over owner's
// balance to move amount to recipient. Writes the decremented allowance
// under (owner, spender=caller) — the canonical ERC-20 semantics — rather
// than the source's (owner, recipient) bookkeeping quirk.
func (t *TokenCore) TransferFrom(caller types.Address, emit events.Emitter, owner, recipient types.Address, amount types.Amount) error {
	if err := t.prelude(caller); err != nil {
		return err
	}
	if err := t.requireNotBlacklisted(owner); err != nil {
		return err
	}
	if err := t.requireNotBlacklisted(recipient); err != nil {
		return err
	}
	if owner == recipient {
		return errors.ErrCannotTargetSelfUser
	}
	if amount.IsZero() {
		return nil
	}
	allowance, err := t.state.Allowances.Get(owner, caller)
	if err != nil {
		return err
	}
	newAllowance, ok := allowance.CheckedSub(amount)
	if !ok {
		return errors.ErrInsufficientAllowance
	}
	if err := t.state.Allowances.Set(owner, caller, newAllowance); err != nil {
		return err
	}
	emit.Emit(events.TransferFrom{Spender: caller, Owner: owner, Recipient: recipient, Amount: amount})
	return t.rawTransfer(owner, recipient, amount, emit)
}
