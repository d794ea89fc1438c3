package state

import (
	"tokencore/core/types"
	"tokencore/storage"
)

// SupplyCounter is the single scalar tracking total outstanding supply.
type SupplyCounter struct {
	store storage.Backend
}

// NewSupplyCounter wraps a storage.Backend as a SupplyCounter.
func NewSupplyCounter(store storage.Backend) *SupplyCounter {
	return &SupplyCounter{store: store}
}

// Get returns total supply, defaulting to zero when unset.
func (s *SupplyCounter) Get() (types.Amount, error) {
	data, err := s.store.Get(prefixSupply)
	if err != nil {
		return types.Amount{}, err
	}
	return decodeAmount(data)
}

// Set overwrites total supply.
func (s *SupplyCounter) Set(amount types.Amount) error {
	encoded, err := encodeAmount(amount)
	if err != nil {
		return err
	}
	return s.store.Set(prefixSupply, encoded)
}
