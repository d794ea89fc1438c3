package indexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tokencore/core/events"
	"tokencore/core/types"
)

func testAddress(t *testing.T, b byte) types.Address {
	t.Helper()
	raw := [20]byte{}
	raw[19] = b
	addr, err := types.NewAccountAddress(raw[:])
	require.NoError(t, err)
	return addr
}

func newTestIndexer(t *testing.T) *Indexer {
	t.Helper()
	db, err := Open(DriverSQLite, "file::memory:?cache=shared")
	require.NoError(t, err)
	return New(db, nil)
}

func TestEmitRecordsEventRow(t *testing.T) {
	ix := newTestIndexer(t)
	ix.Emit(events.Mint{Recipient: testAddress(t, 1), Amount: mustAmount(t, "100")})

	var count int64
	require.NoError(t, ix.db.Model(&EventRecord{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	var row EventRecord
	require.NoError(t, ix.db.First(&row).Error)
	require.Equal(t, events.TypeMint, row.EventType)
}

func TestEmitProjectsAllowanceChanges(t *testing.T) {
	ix := newTestIndexer(t)
	owner := testAddress(t, 1)
	spender := testAddress(t, 2)
	ix.Emit(events.SetAllowance{Owner: owner, Spender: spender, Allowance: mustAmount(t, "500")})

	var row AllowanceProjection
	require.NoError(t, ix.db.First(&row, "owner = ? AND spender = ?", owner.String(), spender.String()).Error)
	require.Equal(t, "500", row.Allowance)

	ix.Emit(events.IncreaseAllowance{Owner: owner, Spender: spender, Allowance: mustAmount(t, "700"), IncBy: mustAmount(t, "200")})
	require.NoError(t, ix.db.First(&row, "owner = ? AND spender = ?", owner.String(), spender.String()).Error)
	require.Equal(t, "700", row.Allowance)
}

func TestSyncBalanceOverwrites(t *testing.T) {
	ix := newTestIndexer(t)
	addr := testAddress(t, 7)
	require.NoError(t, ix.SyncBalance(addr.String(), "1000"))
	require.NoError(t, ix.SyncBalance(addr.String(), "750"))

	var row BalanceProjection
	require.NoError(t, ix.db.First(&row, "address = ?", addr.String()).Error)
	require.Equal(t, "750", row.Balance)
}

func mustAmount(t *testing.T, s string) types.Amount {
	t.Helper()
	amount, ok := types.AmountFromDecimal(s)
	require.True(t, ok)
	return amount
}
