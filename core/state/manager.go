package state

import "tokencore/storage"

// Manager composes every ledger TokenCore needs over one storage.Backend.
// It holds no business logic of its own; entry points compose the ledgers
// directly rather than routing through one god object.
type Manager struct {
	Balances         *BalanceLedger
	Supply           *SupplyCounter
	Allowances       *AllowanceLedger
	MinterAllowances *MinterAllowanceLedger
	Roles            *RoleRegistry
	Controllers      *ControllerBinding
	Paused           *PauseFlag
	Blacklister      *BlacklisterSlot
	Modality         *ModalityCell
	Metadata         *MetadataCell
}

// NewManager wires every ledger over the same backend.
func NewManager(store storage.Backend) *Manager {
	return &Manager{
		Balances:         NewBalanceLedger(store),
		Supply:           NewSupplyCounter(store),
		Allowances:       NewAllowanceLedger(store),
		MinterAllowances: NewMinterAllowanceLedger(store),
		Roles:            NewRoleRegistry(store),
		Controllers:      NewControllerBinding(store),
		Paused:           NewPauseFlag(store),
		Blacklister:      NewBlacklisterSlot(store),
		Modality:         NewModalityCell(store),
		Metadata:         NewMetadataCell(store),
	}
}
