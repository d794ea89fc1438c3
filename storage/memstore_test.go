package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemStoreGetMissReturnsNilNil(t *testing.T) {
	store := NewMemStore()
	value, err := store.Get([]byte("missing"))
	require.NoError(t, err)
	require.Nil(t, value)
}

func TestMemStoreSetGetDelete(t *testing.T) {
	store := NewMemStore()
	require.NoError(t, store.Set([]byte("k"), []byte("v")))

	got, err := store.Get([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got)

	require.NoError(t, store.Delete([]byte("k")))
	got, err = store.Get([]byte("k"))
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestMemStoreDefensiveCopyOnSet(t *testing.T) {
	store := NewMemStore()
	value := []byte("v")
	require.NoError(t, store.Set([]byte("k"), value))
	value[0] = 'x'

	got, err := store.Get([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got)
}
