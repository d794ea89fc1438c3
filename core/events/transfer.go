package events

import "tokencore/core/types"

const (
	TypeTransfer     = "token.transfer"
	TypeTransferFrom = "token.transfer_from"
)

// Transfer is emitted by every successful balance movement, including the
// zero-amount no-op transfer and the raw_transfer delegate of
// transfer_from.
type Transfer struct {
	Sender    types.Address
	Recipient types.Address
	Amount    types.Amount
}

func (Transfer) EventType() string { return TypeTransfer }

func (e Transfer) ToEnvelope() *types.Event {
	return &types.Event{
		Type: TypeTransfer,
		Attributes: map[string]string{
			"sender":    e.Sender.String(),
			"recipient": e.Recipient.String(),
			"amount":    e.Amount.String(),
		},
	}
}

// TransferFrom is emitted before the delegated raw_transfer fires,
// recording the spender that authorized the movement.
type TransferFrom struct {
	Spender   types.Address
	Owner     types.Address
	Recipient types.Address
	Amount    types.Amount
}

func (TransferFrom) EventType() string { return TypeTransferFrom }

func (e TransferFrom) ToEnvelope() *types.Event {
	return &types.Event{
		Type: TypeTransferFrom,
		Attributes: map[string]string{
			"spender":   e.Spender.String(),
			"owner":     e.Owner.String(),
			"recipient": e.Recipient.String(),
			"amount":    e.Amount.String(),
		},
	}
}
