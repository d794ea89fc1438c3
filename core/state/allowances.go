package state

import (
	"tokencore/core/types"
	"tokencore/storage"
)

// AllowanceLedger is the (owner, spender) -> allowance map-like value.
type AllowanceLedger struct {
	store storage.Backend
}

// NewAllowanceLedger wraps a storage.Backend as an AllowanceLedger.
func NewAllowanceLedger(store storage.Backend) *AllowanceLedger {
	return &AllowanceLedger{store: store}
}

// Get returns the allowance spender holds over owner's balance, defaulting
// to zero when unset.
func (l *AllowanceLedger) Get(owner, spender types.Address) (types.Amount, error) {
	data, err := l.store.Get(allowanceKey(owner, spender))
	if err != nil {
		return types.Amount{}, err
	}
	return decodeAmount(data)
}

// Set overwrites the (owner, spender) allowance.
func (l *AllowanceLedger) Set(owner, spender types.Address, amount types.Amount) error {
	encoded, err := encodeAmount(amount)
	if err != nil {
		return err
	}
	return l.store.Set(allowanceKey(owner, spender), encoded)
}
