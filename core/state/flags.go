package state

import (
	"tokencore/core/types"
	"tokencore/storage"
)

var flagSet = []byte{1}

// PauseFlag is the single scalar pause() and unpause() toggle.
type PauseFlag struct {
	store storage.Backend
}

// NewPauseFlag wraps a storage.Backend as a PauseFlag.
func NewPauseFlag(store storage.Backend) *PauseFlag {
	return &PauseFlag{store: store}
}

// IsPaused reports whether the contract is currently paused.
func (p *PauseFlag) IsPaused() (bool, error) {
	data, err := p.store.Get(prefixPaused)
	if err != nil {
		return false, err
	}
	return len(data) > 0, nil
}

// Set overwrites the pause flag.
func (p *PauseFlag) Set(paused bool) error {
	if paused {
		return p.store.Set(prefixPaused, flagSet)
	}
	return p.store.Delete(prefixPaused)
}

// BlacklisterSlot is the single scalar holding the current blacklister
// address, distinct from RoleRegistry because exactly one address can
// hold it at a time (update_blacklister replaces rather than adds).
type BlacklisterSlot struct {
	store storage.Backend
}

// NewBlacklisterSlot wraps a storage.Backend as a BlacklisterSlot.
func NewBlacklisterSlot(store storage.Backend) *BlacklisterSlot {
	return &BlacklisterSlot{store: store}
}

// Get returns the current blacklister, and whether one has been set.
func (b *BlacklisterSlot) Get() (types.Address, bool, error) {
	data, err := b.store.Get(prefixBlacklister)
	if err != nil {
		return types.Address{}, false, err
	}
	if len(data) != 21 {
		return types.Address{}, false, nil
	}
	var addr types.Address
	addr.Kind = types.AddressKind(data[0])
	copy(addr.Raw[:], data[1:])
	return addr, true, nil
}

// Set replaces the current blacklister.
func (b *BlacklisterSlot) Set(addr types.Address) error {
	encoded := make([]byte, 0, 21)
	encoded = append(encoded, byte(addr.Kind))
	encoded = append(encoded, addr.Raw[:]...)
	return b.store.Set(prefixBlacklister, encoded)
}

// ModalityCell is the single scalar gating whether mint/burn entry points
// are reachable at all.
type ModalityCell struct {
	store storage.Backend
}

// NewModalityCell wraps a storage.Backend as a ModalityCell.
func NewModalityCell(store storage.Backend) *ModalityCell {
	return &ModalityCell{store: store}
}

// Get returns the configured modality, defaulting to None when unset.
func (m *ModalityCell) Get() (types.Modality, error) {
	data, err := m.store.Get(prefixModality)
	if err != nil {
		return types.ModalityNone, err
	}
	if len(data) == 0 {
		return types.ModalityNone, nil
	}
	return types.Modality(data[0]), nil
}

// Set overwrites the configured modality.
func (m *ModalityCell) Set(modality types.Modality) error {
	return m.store.Set(prefixModality, []byte{byte(modality)})
}
