// Package storage defines the key/value collaborator TokenCore's ledgers
// are backed by, plus reference implementations. The host owning durable
// storage between invocations is out of this repository's scope; MemStore
// and LevelStore exist so the core is runnable end-to-end for tests, the
// CLI, and local development.
package storage

// Backend is a generic key/value store. Get returns (nil, nil) on a miss,
// matching the ledgers' get-or-default convention.
type Backend interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	Delete(key []byte) error
}
