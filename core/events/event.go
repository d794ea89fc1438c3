// Package events defines the structured events TokenCore emits. Each kind
// is its own Go type so callers get compile-time field checking; ToEnvelope
// flattens it into the host-facing types.Event for logging/indexing.
package events

import "tokencore/core/types"

// Event is implemented by every emittable event kind.
type Event interface {
	EventType() string
	ToEnvelope() *types.Event
}

// Emitter broadcasts events to downstream subscribers (gateway WebSocket
// feed, the off-chain indexer, audit export).
type Emitter interface {
	Emit(Event)
}

// NoopEmitter discards every event; useful where an Emitter is required
// but the caller does not care to observe emissions (e.g. read-only query
// paths, which never emit in the first place, or unit tests focused on
// ledger state rather than the event log).
type NoopEmitter struct{}

// Emit implements Emitter.
func (NoopEmitter) Emit(Event) {}

// Recorder is an Emitter that accumulates every event it sees, in order.
// Tests use it to assert on exact event sequences end-to-end.
type Recorder struct {
	Events []Event
}

// Emit implements Emitter.
func (r *Recorder) Emit(e Event) {
	r.Events = append(r.Events, e)
}

// Types returns the EventType of every recorded event, in emission order.
func (r *Recorder) Types() []string {
	out := make([]string, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.EventType()
	}
	return out
}

// FanOut is an Emitter that forwards every event to a fixed set of
// downstream Emitters, in order. Used to wire a host.Runtime's single
// configured emitter out to both the indexer and the gateway's WebSocket
// broadcast.
type FanOut struct {
	targets []Emitter
}

// NewFanOut builds a FanOut over targets.
func NewFanOut(targets ...Emitter) *FanOut {
	return &FanOut{targets: targets}
}

// Emit implements Emitter.
func (f *FanOut) Emit(e Event) {
	for _, target := range f.targets {
		target.Emit(e)
	}
}
