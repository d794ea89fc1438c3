package events

import "tokencore/core/types"

const (
	TypePaused   = "token.paused"
	TypeUnpaused = "token.unpaused"
)

// Paused is emitted by pause.
type Paused struct{}

func (Paused) EventType() string { return TypePaused }

func (Paused) ToEnvelope() *types.Event {
	return &types.Event{Type: TypePaused, Attributes: map[string]string{}}
}

// Unpaused is emitted by unpause.
type Unpaused struct{}

func (Unpaused) EventType() string { return TypeUnpaused }

func (Unpaused) ToEnvelope() *types.Event {
	return &types.Event{Type: TypeUnpaused, Attributes: map[string]string{}}
}
