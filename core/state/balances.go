package state

import (
	"tokencore/core/types"
	"tokencore/storage"
)

// BalanceLedger is the owner-address -> balance map-like value.
type BalanceLedger struct {
	store storage.Backend
}

// NewBalanceLedger wraps a storage.Backend as a BalanceLedger.
func NewBalanceLedger(store storage.Backend) *BalanceLedger {
	return &BalanceLedger{store: store}
}

// Get returns owner's balance, defaulting to zero when unset.
func (l *BalanceLedger) Get(owner types.Address) (types.Amount, error) {
	data, err := l.store.Get(balanceKey(owner))
	if err != nil {
		return types.Amount{}, err
	}
	return decodeAmount(data)
}

// Set overwrites owner's balance.
func (l *BalanceLedger) Set(owner types.Address, amount types.Amount) error {
	encoded, err := encodeAmount(amount)
	if err != nil {
		return err
	}
	return l.store.Set(balanceKey(owner), encoded)
}
