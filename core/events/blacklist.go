package events

import "tokencore/core/types"

const (
	TypeBlacklist         = "token.blacklist"
	TypeUnblacklist       = "token.unblacklist"
	TypeBlacklisterChanged = "token.blacklister_changed"
)

// Blacklist is emitted when the Blacklister marks an account.
type Blacklist struct {
	Account types.Address
}

func (Blacklist) EventType() string { return TypeBlacklist }

func (e Blacklist) ToEnvelope() *types.Event {
	return &types.Event{Type: TypeBlacklist, Attributes: map[string]string{
		"account": e.Account.String(),
	}}
}

// Unblacklist is emitted when the Blacklister clears an account.
type Unblacklist struct {
	Account types.Address
}

func (Unblacklist) EventType() string { return TypeUnblacklist }

func (e Unblacklist) ToEnvelope() *types.Event {
	return &types.Event{Type: TypeUnblacklist, Attributes: map[string]string{
		"account": e.Account.String(),
	}}
}

// BlacklisterChanged is emitted exactly once per update_blacklister call.
type BlacklisterChanged struct {
	NewBlacklister types.Address
}

func (BlacklisterChanged) EventType() string { return TypeBlacklisterChanged }

func (e BlacklisterChanged) ToEnvelope() *types.Event {
	return &types.Event{Type: TypeBlacklisterChanged, Attributes: map[string]string{
		"newBlacklister": e.NewBlacklister.String(),
	}}
}
