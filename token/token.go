// Package token implements TokenCore: the authority and accounting state
// machine composing the role registry, controller/minter bindings,
// allowance and balance ledgers, and the pause/blacklist gates that every
// mutating entry point passes through. TokenCore itself holds no storage;
// it is constructed fresh over whatever storage.Backend a host.Runtime
// Dispatch call hands it, so the same logic runs against a buffered
// per-invocation view in production and a bare MemStore in tests.
package token

import (
	"tokencore/core/events"
	"tokencore/core/state"
	"tokencore/core/types"
	"tokencore/storage"
)

// TokenCore composes every ledger over one storage.Backend. Construct one
// per host.Runtime.Dispatch invocation.
type TokenCore struct {
	state *state.Manager
}

// New wraps a storage.Backend as a TokenCore.
func New(store storage.Backend) *TokenCore {
	return &TokenCore{state: state.NewManager(store)}
}

// InitParams are the arguments to the one-time init entry point.
type InitParams struct {
	Symbol            string
	Name              string
	Decimals          uint8
	InitialSupply     types.Amount
	MasterMinterList  []types.Address
	OwnerList         []types.Address
	PauserList        []types.Address
	Blacklister       types.Address
	Modality          types.Modality
}

// Init is callable exactly once by the host at deployment. It credits the
// initial supply to the deploying caller, grants every listed role, sets
// modality, and emits the opening Mint event.
func (t *TokenCore) Init(caller types.Address, emit events.Emitter, p InitParams) error {
	if err := t.state.Metadata.Set(p.Name, p.Symbol, p.Decimals); err != nil {
		return err
	}
	if err := t.state.Balances.Set(caller, p.InitialSupply); err != nil {
		return err
	}
	if err := t.state.Supply.Set(p.InitialSupply); err != nil {
		return err
	}
	if err := t.state.Modality.Set(p.Modality); err != nil {
		return err
	}
	for _, a := range p.MasterMinterList {
		if err := t.state.Roles.Grant(types.RoleMasterMinter, a); err != nil {
			return err
		}
	}
	for _, a := range p.OwnerList {
		if err := t.state.Roles.Grant(types.RoleOwner, a); err != nil {
			return err
		}
	}
	for _, a := range p.PauserList {
		if err := t.state.Roles.Grant(types.RolePauser, a); err != nil {
			return err
		}
	}
	if err := t.state.Roles.Grant(types.RoleBlacklister, p.Blacklister); err != nil {
		return err
	}
	if err := t.state.Blacklister.Set(p.Blacklister); err != nil {
		return err
	}
	emit.Emit(events.Mint{Recipient: caller, Amount: p.InitialSupply})
	return nil
}

// hasRole is a small convenience over RoleRegistry.Has that turns a
// storage error into a Go error TokenCore callers return directly.
func (t *TokenCore) hasRole(role types.Role, addr types.Address) (bool, error) {
	return t.state.Roles.Has(role, addr)
}
