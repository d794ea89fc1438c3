package state

import (
	"github.com/ethereum/go-ethereum/rlp"

	"tokencore/storage"
)

var prefixMetadata = []byte("token/metadata")

type metadataRecord struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// MetadataCell is the single scalar holding the token's immutable display
// fields, set once by init.
type MetadataCell struct {
	store storage.Backend
}

// NewMetadataCell wraps a storage.Backend as a MetadataCell.
func NewMetadataCell(store storage.Backend) *MetadataCell {
	return &MetadataCell{store: store}
}

// Get returns the stored name, symbol and decimals, defaulting to the zero
// values when init has not yet run.
func (m *MetadataCell) Get() (name string, symbol string, decimals uint8, err error) {
	data, err := m.store.Get(prefixMetadata)
	if err != nil {
		return "", "", 0, err
	}
	if len(data) == 0 {
		return "", "", 0, nil
	}
	var rec metadataRecord
	if err := rlp.DecodeBytes(data, &rec); err != nil {
		return "", "", 0, err
	}
	return rec.Name, rec.Symbol, rec.Decimals, nil
}

// Set stores the token's display fields.
func (m *MetadataCell) Set(name, symbol string, decimals uint8) error {
	encoded, err := rlp.EncodeToBytes(metadataRecord{Name: name, Symbol: symbol, Decimals: decimals})
	if err != nil {
		return err
	}
	return m.store.Set(prefixMetadata, encoded)
}
