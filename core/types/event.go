package types

// Event is the wire envelope every structured event is flattened into
// before it reaches the host's log. Field order in the originating
// struct is part of the contract; Attributes is a rendering convenience
// for logs/indexers, not the source of field ordering.
type Event struct {
	Type       string
	Attributes map[string]string
}
