package events

import "tokencore/core/types"

const (
	TypeControllerConfigured = "token.controller.configured"
	TypeControllerRemoved    = "token.controller.removed"
	TypeMinterConfigured     = "token.minter.configured"
	TypeMinterRemoved        = "token.minter.removed"
)

// ControllerConfigured is emitted by configure_controller.
type ControllerConfigured struct {
	Controller types.Address
	Minter     types.Address
}

func (ControllerConfigured) EventType() string { return TypeControllerConfigured }

func (e ControllerConfigured) ToEnvelope() *types.Event {
	return &types.Event{Type: TypeControllerConfigured, Attributes: map[string]string{
		"controller": e.Controller.String(),
		"minter":     e.Minter.String(),
	}}
}

// ControllerRemoved is emitted by remove_controller. The controllers
// binding is not cleared; it simply becomes unreachable once the caller
// no longer holds Role::Controller.
type ControllerRemoved struct {
	Controller types.Address
}

func (ControllerRemoved) EventType() string { return TypeControllerRemoved }

func (e ControllerRemoved) ToEnvelope() *types.Event {
	return &types.Event{Type: TypeControllerRemoved, Attributes: map[string]string{
		"controller": e.Controller.String(),
	}}
}

// MinterConfigured is emitted by configure/increase/decrease_minter_allowance
// with the resulting allowance.
type MinterConfigured struct {
	Minter          types.Address
	MinterAllowance types.Amount
}

func (MinterConfigured) EventType() string { return TypeMinterConfigured }

func (e MinterConfigured) ToEnvelope() *types.Event {
	return &types.Event{Type: TypeMinterConfigured, Attributes: map[string]string{
		"minter":          e.Minter.String(),
		"minterAllowance": e.MinterAllowance.String(),
	}}
}

// MinterRemoved is emitted by remove_minter. minter_allowance is NOT
// cleared here; a caller resurrecting the role would see the stale
// allowance.
type MinterRemoved struct {
	Minter types.Address
}

func (MinterRemoved) EventType() string { return TypeMinterRemoved }

func (e MinterRemoved) ToEnvelope() *types.Event {
	return &types.Event{Type: TypeMinterRemoved, Attributes: map[string]string{
		"minter": e.Minter.String(),
	}}
}
