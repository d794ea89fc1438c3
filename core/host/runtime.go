package host

import (
	"sync"

	"tokencore/core/events"
	"tokencore/storage"
)

// bufferedStore wraps a storage.Backend and holds every write made during
// one Dispatch call in memory, so a reverting entry point leaves the
// underlying backend untouched. Reads fall through to pending writes first,
// then to the backend, giving the invocation a read-your-writes view.
type bufferedStore struct {
	backend storage.Backend
	writes  map[string][]byte
	deletes map[string]bool
}

func newBufferedStore(backend storage.Backend) *bufferedStore {
	return &bufferedStore{
		backend: backend,
		writes:  make(map[string][]byte),
		deletes: make(map[string]bool),
	}
}

func (b *bufferedStore) Get(key []byte) ([]byte, error) {
	k := string(key)
	if b.deletes[k] {
		return nil, nil
	}
	if v, ok := b.writes[k]; ok {
		out := make([]byte, len(v))
		copy(out, v)
		return out, nil
	}
	return b.backend.Get(key)
}

func (b *bufferedStore) Set(key []byte, value []byte) error {
	k := string(key)
	cloned := make([]byte, len(value))
	copy(cloned, value)
	b.writes[k] = cloned
	delete(b.deletes, k)
	return nil
}

func (b *bufferedStore) Delete(key []byte) error {
	k := string(key)
	b.deletes[k] = true
	delete(b.writes, k)
	return nil
}

// commit flushes every buffered write/delete to the real backend.
func (b *bufferedStore) commit() error {
	for k, v := range b.writes {
		if err := b.backend.Set([]byte(k), v); err != nil {
			return err
		}
	}
	for k := range b.deletes {
		if err := b.backend.Delete([]byte(k)); err != nil {
			return err
		}
	}
	return nil
}

// Runtime is the in-process analogue of the host-level transaction boundary:
// every invocation either commits its storage writes and emits its events,
// or leaves the ledger and event log exactly as they were. There is no
// panic/longjmp unwind here (idiomatic Go instead returns error), so the
// all-or-nothing guarantee is implemented by buffering writes and events
// and only flushing them once the invoked function returns nil.
type Runtime struct {
	mu      sync.Mutex
	backend storage.Backend
	emitter events.Emitter
}

// NewRuntime constructs a Runtime over a durable backend and a downstream
// event emitter (a Recorder in tests, the gateway's broadcast emitter in
// production).
func NewRuntime(backend storage.Backend, emitter events.Emitter) *Runtime {
	if emitter == nil {
		emitter = events.NoopEmitter{}
	}
	return &Runtime{backend: backend, emitter: emitter}
}

// Dispatch runs fn against a buffered view of storage and a buffered event
// sink. Invocations are serialized: TokenCore's ledgers assume no
// concurrent mutation, matching a single-threaded host's execution model.
// On success, buffered writes commit to the backend and buffered events
// flush to the real emitter, in emission order. On error, both are
// discarded and fn's error is returned unchanged.
func (r *Runtime) Dispatch(fn func(store storage.Backend, emit events.Emitter) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	buffered := newBufferedStore(r.backend)
	recorder := &events.Recorder{}

	if err := fn(buffered, recorder); err != nil {
		return err
	}

	if err := buffered.commit(); err != nil {
		return err
	}
	for _, e := range recorder.Events {
		r.emitter.Emit(e)
	}
	return nil
}

// Query runs fn directly against the durable backend, with no write buffer
// and no event emission — the read-only counterpart to Dispatch for
// entry points that never mutate state. It still takes the same mutex, so a
// query never observes a torn write from a concurrently-committing
// Dispatch.
func (r *Runtime) Query(fn func(store storage.Backend) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.backend)
}
