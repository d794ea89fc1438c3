package audit

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tokencore/core/events"
	"tokencore/core/types"
	"tokencore/indexer"
)

func TestExportEventsWritesParquetWithChecksum(t *testing.T) {
	db, err := indexer.Open(indexer.DriverSQLite, "file::memory:?cache=shared")
	require.NoError(t, err)
	ix := indexer.New(db, nil)

	recipient, err := types.NewAccountAddress(make([]byte, 20))
	require.NoError(t, err)
	amount, ok := types.AmountFromDecimal("42")
	require.True(t, ok)
	ix.Emit(events.Mint{Recipient: recipient, Amount: amount})

	var records []indexer.EventRecord
	require.NoError(t, db.Find(&records).Error)
	require.Len(t, records, 1)

	path := filepath.Join(t.TempDir(), "events.parquet")
	result, err := ExportEvents(records, path)
	require.NoError(t, err)
	require.Equal(t, 1, result.RowCount)
	require.NotEmpty(t, result.Checksum)
	require.FileExists(t, path)
}
