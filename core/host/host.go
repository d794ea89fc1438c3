// Package host defines the narrow surface TokenCore needs from whatever
// embeds it: who is calling, and what time it is. Durable storage and
// event delivery are modeled separately (storage.Backend, events.Emitter)
// because both need buffering semantics the identity/clock facts don't.
package host

import (
	"time"

	"tokencore/core/types"
)

// ExecutionHost describes the caller identity and block time an
// embedding supplies. TokenCore entry points take the caller as an
// explicit argument rather than reading it from an ExecutionHost;
// StaticHost is the one implementation in this repository.
type ExecutionHost interface {
	// Caller returns the address invoking the current entry point.
	Caller() types.Address
	// BlockTime returns the current logical time, for callers that want
	// to timestamp events or logs; TokenCore's own invariants never
	// depend on it.
	BlockTime() time.Time
}

// StaticHost is a fixed ExecutionHost, for tests and single-shot CLI
// invocations where caller and time are known up front.
type StaticHost struct {
	CallerAddr types.Address
	Time       time.Time
}

// Caller implements ExecutionHost.
func (s StaticHost) Caller() types.Address { return s.CallerAddr }

// BlockTime implements ExecutionHost.
func (s StaticHost) BlockTime() time.Time { return s.Time }
