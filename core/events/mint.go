package events

import "tokencore/core/types"

const (
	TypeMint = "token.mint"
	TypeBurn = "token.burn"
)

// Mint is emitted by init (crediting the deploying caller) and by mint.
type Mint struct {
	Recipient types.Address
	Amount    types.Amount
}

func (Mint) EventType() string { return TypeMint }

func (e Mint) ToEnvelope() *types.Event {
	return &types.Event{
		Type: TypeMint,
		Attributes: map[string]string{
			"recipient": e.Recipient.String(),
			"amount":    e.Amount.String(),
		},
	}
}

// Burn is emitted by burn.
type Burn struct {
	Owner  types.Address
	Amount types.Amount
}

func (Burn) EventType() string { return TypeBurn }

func (e Burn) ToEnvelope() *types.Event {
	return &types.Event{
		Type: TypeBurn,
		Attributes: map[string]string{
			"owner":  e.Owner.String(),
			"amount": e.Amount.String(),
		},
	}
}
