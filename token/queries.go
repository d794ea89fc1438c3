package token

import "tokencore/core/types"

// Name returns the token's display name. Never reverts.
func (t *TokenCore) Name() (string, error) {
	name, _, _, err := t.state.Metadata.Get()
	return name, err
}

// Symbol returns the token's ticker symbol. Never reverts.
func (t *TokenCore) Symbol() (string, error) {
	_, symbol, _, err := t.state.Metadata.Get()
	return symbol, err
}

// Decimals returns the token's display precision. Never reverts.
func (t *TokenCore) Decimals() (uint8, error) {
	_, _, decimals, err := t.state.Metadata.Get()
	return decimals, err
}

// TotalSupply returns the current total outstanding supply. Never reverts.
func (t *TokenCore) TotalSupply() (types.Amount, error) {
	return t.state.Supply.Get()
}

// BalanceOf returns a's balance, defaulting to zero. Never reverts.
func (t *TokenCore) BalanceOf(a types.Address) (types.Amount, error) {
	return t.state.Balances.Get(a)
}

// Allowance returns spender's delegated allowance over owner's balance,
// defaulting to zero. Never reverts.
func (t *TokenCore) Allowance(owner, spender types.Address) (types.Amount, error) {
	return t.state.Allowances.Get(owner, spender)
}

// MinterAllowance returns m's remaining mint capacity, defaulting to
// zero. Never reverts.
func (t *TokenCore) MinterAllowance(m types.Address) (types.Amount, error) {
	return t.state.MinterAllowances.Get(m)
}

// IsMinter reports whether a holds Role::Minter. Never reverts.
func (t *TokenCore) IsMinter(a types.Address) (bool, error) {
	return t.hasRole(types.RoleMinter, a)
}

// IsBlacklisted reports whether a holds Role::Blacklisted. Never reverts.
func (t *TokenCore) IsBlacklisted(a types.Address) (bool, error) {
	return t.hasRole(types.RoleBlacklisted, a)
}

// IsOwner reports whether a holds Role::Owner. Never reverts.
func (t *TokenCore) IsOwner(a types.Address) (bool, error) {
	return t.hasRole(types.RoleOwner, a)
}

// IsPauser reports whether a holds Role::Pauser. Never reverts.
func (t *TokenCore) IsPauser(a types.Address) (bool, error) {
	return t.hasRole(types.RolePauser, a)
}

// IsPaused reports whether the contract is currently paused. Never reverts.
func (t *TokenCore) IsPaused() (bool, error) {
	return t.state.Paused.IsPaused()
}
