package state

import (
	"tokencore/core/types"
	"tokencore/storage"
)

// ControllerBinding is the controller-address -> managed-minter-address
// map-like value configure_controller establishes. remove_controller
// leaves the binding in place; it only revokes the controller's role.
type ControllerBinding struct {
	store storage.Backend
}

// NewControllerBinding wraps a storage.Backend as a ControllerBinding.
func NewControllerBinding(store storage.Backend) *ControllerBinding {
	return &ControllerBinding{store: store}
}

// Get returns the minter controller manages, and whether a binding exists.
func (b *ControllerBinding) Get(controller types.Address) (types.Address, bool, error) {
	data, err := b.store.Get(controllerKey(controller))
	if err != nil {
		return types.Address{}, false, err
	}
	if len(data) == 0 {
		return types.Address{}, false, nil
	}
	var addr types.Address
	if len(data) != 21 {
		return types.Address{}, false, nil
	}
	addr.Kind = types.AddressKind(data[0])
	copy(addr.Raw[:], data[1:])
	return addr, true, nil
}

// Set binds controller to the minter it manages.
func (b *ControllerBinding) Set(controller, minter types.Address) error {
	encoded := make([]byte, 0, 21)
	encoded = append(encoded, byte(minter.Kind))
	encoded = append(encoded, minter.Raw[:]...)
	return b.store.Set(controllerKey(controller), encoded)
}

// Delete removes controller's binding entirely.
func (b *ControllerBinding) Delete(controller types.Address) error {
	return b.store.Delete(controllerKey(controller))
}
