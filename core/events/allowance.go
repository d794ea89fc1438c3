package events

import "tokencore/core/types"

const (
	TypeSetAllowance      = "token.allowance.set"
	TypeIncreaseAllowance = "token.allowance.increase"
	TypeDecreaseAllowance = "token.allowance.decrease"
)

// SetAllowance is emitted by approve: the new allowance overwrites any
// prior value.
type SetAllowance struct {
	Owner     types.Address
	Spender   types.Address
	Allowance types.Amount
}

func (SetAllowance) EventType() string { return TypeSetAllowance }

func (e SetAllowance) ToEnvelope() *types.Event {
	return &types.Event{
		Type: TypeSetAllowance,
		Attributes: map[string]string{
			"owner":     e.Owner.String(),
			"spender":   e.Spender.String(),
			"allowance": e.Allowance.String(),
		},
	}
}

// IncreaseAllowance reports the pre-addition allowance and the delta
// applied, matching the source's field semantics.
type IncreaseAllowance struct {
	Owner     types.Address
	Spender   types.Address
	Allowance types.Amount
	IncBy     types.Amount
}

func (IncreaseAllowance) EventType() string { return TypeIncreaseAllowance }

func (e IncreaseAllowance) ToEnvelope() *types.Event {
	return &types.Event{
		Type: TypeIncreaseAllowance,
		Attributes: map[string]string{
			"owner":     e.Owner.String(),
			"spender":   e.Spender.String(),
			"allowance": e.Allowance.String(),
			"incBy":     e.IncBy.String(),
		},
	}
}

// DecreaseAllowance reports the pre-subtraction allowance and the delta
// requested (which may exceed the amount actually subtracted, since the
// subtraction saturates at zero).
type DecreaseAllowance struct {
	Owner     types.Address
	Spender   types.Address
	Allowance types.Amount
	DecrBy    types.Amount
}

func (DecreaseAllowance) EventType() string { return TypeDecreaseAllowance }

func (e DecreaseAllowance) ToEnvelope() *types.Event {
	return &types.Event{
		Type: TypeDecreaseAllowance,
		Attributes: map[string]string{
			"owner":     e.Owner.String(),
			"spender":   e.Spender.String(),
			"allowance": e.Allowance.String(),
			"decrBy":    e.DecrBy.String(),
		},
	}
}
