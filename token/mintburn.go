package token

import (
	"tokencore/core/errors"
	"tokencore/core/events"
	"tokencore/core/types"
)

// assertMintAndBurnEnabled gates both mint and burn on modality.
func (t *TokenCore) assertMintAndBurnEnabled() error {
	modality, err := t.state.Modality.Get()
	if err != nil {
		return err
	}
	if !modality.MintAndBurnEnabled() {
		return errors.ErrMintBurnDisabled
	}
	return nil
}

// Mint credits recipient with amount, drawn against caller's minter
// allowance. Caller must hold Role::Minter; recipient must not be
// blacklisted.
func (t *TokenCore) Mint(caller types.Address, emit events.Emitter, recipient types.Address, amount types.Amount) error {
	if err := t.prelude(caller); err != nil {
		return err
	}
	if err := t.assertMintAndBurnEnabled(); err != nil {
		return err
	}
	if err := t.requireRole(types.RoleMinter, caller); err != nil {
		return err
	}
	if err := t.requireNotBlacklisted(recipient); err != nil {
		return err
	}
	allowance, err := t.state.MinterAllowances.Get(caller)
	if err != nil {
		return err
	}
	if amount.GreaterThan(allowance) {
		return errors.ErrInsufficientMinterAllowance
	}
	newAllowance, ok := allowance.CheckedSub(amount)
	if !ok {
		return errors.ErrArithmeticUnderflow
	}
	supply, err := t.state.Supply.Get()
	if err != nil {
		return err
	}
	newSupply, ok := supply.CheckedAdd(amount)
	if !ok {
		return errors.ErrArithmeticOverflow
	}
	balance, err := t.state.Balances.Get(recipient)
	if err != nil {
		return err
	}
	newBalance, ok := balance.CheckedAdd(amount)
	if !ok {
		return errors.ErrArithmeticOverflow
	}
	if err := t.state.MinterAllowances.Set(caller, newAllowance); err != nil {
		return err
	}
	if err := t.state.Supply.Set(newSupply); err != nil {
		return err
	}
	if err := t.state.Balances.Set(recipient, newBalance); err != nil {
		return err
	}
	emit.Emit(events.Mint{Recipient: recipient, Amount: amount})
	return nil
}

// Burn destroys amount from caller's own balance. Caller must hold
// Role::Minter.
func (t *TokenCore) Burn(caller types.Address, emit events.Emitter, amount types.Amount) error {
	if err := t.prelude(caller); err != nil {
		return err
	}
	if err := t.assertMintAndBurnEnabled(); err != nil {
		return err
	}
	if err := t.requireRole(types.RoleMinter, caller); err != nil {
		return err
	}
	if amount.IsZero() {
		return errors.ErrInvalidAmount
	}
	balance, err := t.state.Balances.Get(caller)
	if err != nil {
		return err
	}
	if amount.GreaterThan(balance) {
		return errors.ErrInsufficientBalance
	}
	newBalance, ok := balance.CheckedSub(amount)
	if !ok {
		return errors.ErrArithmeticUnderflow
	}
	supply, err := t.state.Supply.Get()
	if err != nil {
		return err
	}
	newSupply, ok := supply.CheckedSub(amount)
	if !ok {
		return errors.ErrArithmeticUnderflow
	}
	if err := t.state.Balances.Set(caller, newBalance); err != nil {
		return err
	}
	if err := t.state.Supply.Set(newSupply); err != nil {
		return err
	}
	emit.Emit(events.Burn{Owner: caller, Amount: amount})
	return nil
}
