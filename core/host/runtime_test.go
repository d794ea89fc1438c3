package host

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"tokencore/core/events"
	"tokencore/storage"
)

func TestDispatchCommitsOnSuccess(t *testing.T) {
	backend := storage.NewMemStore()
	recorder := &events.Recorder{}
	rt := NewRuntime(backend, recorder)

	err := rt.Dispatch(func(store storage.Backend, emit events.Emitter) error {
		return store.Set([]byte("k"), []byte("v"))
	})
	require.NoError(t, err)

	got, err := backend.Get([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got)
}

func TestDispatchDiscardsOnError(t *testing.T) {
	backend := storage.NewMemStore()
	require.NoError(t, backend.Set([]byte("k"), []byte("original")))
	recorder := &events.Recorder{}
	rt := NewRuntime(backend, recorder)

	failure := errors.New("boom")
	err := rt.Dispatch(func(store storage.Backend, emit events.Emitter) error {
		if err := store.Set([]byte("k"), []byte("mutated")); err != nil {
			return err
		}
		return failure
	})
	require.ErrorIs(t, err, failure)

	got, err := backend.Get([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("original"), got)
}

func TestDispatchSerializesConcurrentCallers(t *testing.T) {
	backend := storage.NewMemStore()
	rt := NewRuntime(backend, &events.Recorder{})

	done := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			done <- rt.Dispatch(func(store storage.Backend, emit events.Emitter) error {
				return store.Set([]byte("k"), []byte("v"))
			})
		}()
	}
	require.NoError(t, <-done)
	require.NoError(t, <-done)
}
