package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
)

// LevelStore is a persistent Backend backed by LevelDB, for deployments
// that need ledger state to survive process restarts (tokenctl with
// StorageBackend set to "leveldb", stored under DataDir). Grounded on the
// teacher's LevelDB wrapper (storage/db.go).
type LevelStore struct {
	db *leveldb.DB
}

// NewLevelStore opens (or creates) a LevelDB database at path.
func NewLevelStore(path string) (*LevelStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &LevelStore{db: db}, nil
}

// Get implements Backend.
func (l *LevelStore) Get(key []byte) ([]byte, error) {
	value, err := l.db.Get(key, nil)
	if err != nil {
		if err == errors.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return value, nil
}

// Set implements Backend.
func (l *LevelStore) Set(key []byte, value []byte) error {
	return l.db.Put(key, value, nil)
}

// Delete implements Backend.
func (l *LevelStore) Delete(key []byte) error {
	return l.db.Delete(key, nil)
}

// Close releases the underlying LevelDB handle.
func (l *LevelStore) Close() error {
	return l.db.Close()
}
