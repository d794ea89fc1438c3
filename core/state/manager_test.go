package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tokencore/core/types"
	"tokencore/storage"
)

func TestBalanceLedgerDefaultsToZero(t *testing.T) {
	mgr := NewManager(storage.NewMemStore())
	addr := types.MustNewAccountAddress(make([]byte, 20))

	balance, err := mgr.Balances.Get(addr)
	require.NoError(t, err)
	require.True(t, balance.IsZero())
}

func TestAccountAndContractKeysNeverAlias(t *testing.T) {
	mgr := NewManager(storage.NewMemStore())
	raw := make([]byte, 20)
	raw[0] = 0x42
	account, err := types.NewAccountAddress(raw)
	require.NoError(t, err)
	contract, err := types.NewContractAddress(raw)
	require.NoError(t, err)

	require.NoError(t, mgr.Balances.Set(account, types.NewAmountFromUint64(1)))
	require.NoError(t, mgr.Balances.Set(contract, types.NewAmountFromUint64(2)))

	accountBalance, err := mgr.Balances.Get(account)
	require.NoError(t, err)
	require.Equal(t, "1", accountBalance.String())

	contractBalance, err := mgr.Balances.Get(contract)
	require.NoError(t, err)
	require.Equal(t, "2", contractBalance.String())
}

func TestRoleRegistryGrantRevoke(t *testing.T) {
	mgr := NewManager(storage.NewMemStore())
	addr := types.MustNewAccountAddress(make([]byte, 20))

	has, err := mgr.Roles.Has(types.RoleMinter, addr)
	require.NoError(t, err)
	require.False(t, has)

	require.NoError(t, mgr.Roles.Grant(types.RoleMinter, addr))
	has, err = mgr.Roles.Has(types.RoleMinter, addr)
	require.NoError(t, err)
	require.True(t, has)

	require.NoError(t, mgr.Roles.Revoke(types.RoleMinter, addr))
	has, err = mgr.Roles.Has(types.RoleMinter, addr)
	require.NoError(t, err)
	require.False(t, has)
}

func TestControllerBindingSurvivesRoleRevocation(t *testing.T) {
	mgr := NewManager(storage.NewMemStore())
	controller := types.MustNewAccountAddress(make([]byte, 20))
	minterRaw := make([]byte, 20)
	minterRaw[0] = 1
	minter := types.MustNewAccountAddress(minterRaw)

	require.NoError(t, mgr.Controllers.Set(controller, minter))
	require.NoError(t, mgr.Roles.Revoke(types.RoleController, controller))

	got, ok, err := mgr.Controllers.Get(controller)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, minter, got)
}

func TestMetadataRoundTrip(t *testing.T) {
	mgr := NewManager(storage.NewMemStore())
	require.NoError(t, mgr.Metadata.Set("Token", "TKN", 2))

	name, symbol, decimals, err := mgr.Metadata.Get()
	require.NoError(t, err)
	require.Equal(t, "Token", name)
	require.Equal(t, "TKN", symbol)
	require.Equal(t, uint8(2), decimals)
}
