package state

import (
	"tokencore/core/types"
	"tokencore/storage"
)

// MinterAllowanceLedger is the minter-address -> remaining mint allowance
// map-like value. An entry only exists once a Controller has configured
// the minter; absence and zero are distinguished by the caller checking
// RoleRegistry membership first, not by this ledger.
type MinterAllowanceLedger struct {
	store storage.Backend
}

// NewMinterAllowanceLedger wraps a storage.Backend as a MinterAllowanceLedger.
func NewMinterAllowanceLedger(store storage.Backend) *MinterAllowanceLedger {
	return &MinterAllowanceLedger{store: store}
}

// Get returns minter's remaining mint allowance, defaulting to zero when unset.
func (l *MinterAllowanceLedger) Get(minter types.Address) (types.Amount, error) {
	data, err := l.store.Get(minterAllowanceKey(minter))
	if err != nil {
		return types.Amount{}, err
	}
	return decodeAmount(data)
}

// Set overwrites minter's remaining mint allowance. Removing a minter
// does not call this with zero; the stale allowance survives a
// Controller resurrecting the same minter.
func (l *MinterAllowanceLedger) Set(minter types.Address, amount types.Amount) error {
	encoded, err := encodeAmount(amount)
	if err != nil {
		return err
	}
	return l.store.Set(minterAllowanceKey(minter), encoded)
}
