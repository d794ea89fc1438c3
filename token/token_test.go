package token

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tokencore/core/errors"
	"tokencore/core/events"
	"tokencore/core/types"
	"tokencore/storage"
)

func addr(b byte) types.Address {
	return types.MustNewAccountAddress([]byte{b, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
}

func contractAddr(b byte) types.Address {
	raw := [20]byte{b, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	out, err := types.NewContractAddress(raw[:])
	if err != nil {
		panic(err)
	}
	return out
}

func newCoreWithInit(t *testing.T, masterMinter, blacklister types.Address, modality types.Modality, deployer types.Address) (*TokenCore, *events.Recorder) {
	t.Helper()
	core := New(storage.NewMemStore())
	rec := &events.Recorder{}
	err := core.Init(deployer, rec, InitParams{
		Symbol:           "TKN",
		Name:             "Token",
		Decimals:         2,
		InitialSupply:    types.NewAmountFromUint64(1_000_000_000),
		MasterMinterList: []types.Address{masterMinter},
		OwnerList:        nil,
		PauserList:       nil,
		Blacklister:      blacklister,
		Modality:         modality,
	})
	require.NoError(t, err)
	return core, rec
}

// Scenario 1: mint under allowance.
func TestMintUnderAllowance(t *testing.T) {
	a1, a2, a3, a4, a5 := addr(1), addr(2), addr(3), addr(4), addr(5)
	core, rec := newCoreWithInit(t, a1, a4, types.ModalityMintAndBurn, addr(0xff))

	require.NoError(t, core.ConfigureController(a1, rec, a2, a3))
	require.NoError(t, core.ConfigureMinterAllowance(a2, rec, types.NewAmountFromUint64(10)))
	require.NoError(t, core.Mint(a3, rec, a5, types.NewAmountFromUint64(10)))

	balance, err := core.BalanceOf(a5)
	require.NoError(t, err)
	require.Equal(t, "10", balance.String())

	remaining, err := core.MinterAllowance(a3)
	require.NoError(t, err)
	require.True(t, remaining.IsZero())

	supply, err := core.TotalSupply()
	require.NoError(t, err)
	require.Equal(t, "1000000010", supply.String())

	// The recorder also holds the opening Mint that Init emitted.
	require.Equal(t, []string{
		events.TypeMint,
		events.TypeControllerConfigured,
		events.TypeMinterConfigured,
		events.TypeMint,
	}, rec.Types())
}

// Scenario 2: mint exceeds allowance.
func TestMintExceedsAllowance(t *testing.T) {
	a1, a2, a3, a4, a5 := addr(1), addr(2), addr(3), addr(4), addr(5)
	core, rec := newCoreWithInit(t, a1, a4, types.ModalityMintAndBurn, addr(0xff))

	require.NoError(t, core.ConfigureController(a1, rec, a2, a3))
	require.NoError(t, core.ConfigureMinterAllowance(a2, rec, types.NewAmountFromUint64(10)))

	before := len(rec.Events)
	err := core.Mint(a3, rec, a5, types.NewAmountFromUint64(11))
	require.ErrorIs(t, err, errors.ErrInsufficientMinterAllowance)
	require.Len(t, rec.Events, before)

	balance, err := core.BalanceOf(a5)
	require.NoError(t, err)
	require.True(t, balance.IsZero())
}

// Scenario 3: non-minter cannot mint.
func TestNonMinterCannotMint(t *testing.T) {
	a1, a4, a5 := addr(1), addr(4), addr(5)
	core, rec := newCoreWithInit(t, a1, a4, types.ModalityMintAndBurn, addr(0xff))

	err := core.Mint(a5, rec, a5, types.NewAmountFromUint64(10))
	require.ErrorIs(t, err, errors.ErrInsufficientRights)
}

// Scenario 4: revoked minter cannot mint even with residual allowance.
func TestRevokedMinterCannotMint(t *testing.T) {
	a1, a2, a3, a4, a5 := addr(1), addr(2), addr(3), addr(4), addr(5)
	core, rec := newCoreWithInit(t, a1, a4, types.ModalityMintAndBurn, addr(0xff))

	require.NoError(t, core.ConfigureController(a1, rec, a2, a3))
	require.NoError(t, core.ConfigureMinterAllowance(a2, rec, types.NewAmountFromUint64(10)))
	require.NoError(t, core.RemoveMinter(a2, rec))

	err := core.Mint(a3, rec, a5, types.NewAmountFromUint64(10))
	require.ErrorIs(t, err, errors.ErrInsufficientRights)

	remaining, err := core.MinterAllowance(a3)
	require.NoError(t, err)
	require.Equal(t, "10", remaining.String())
}

// Scenario 5: pause blocks mint but not authority-admin operations.
func TestPauseBlocksMintNotAdmin(t *testing.T) {
	a1, a2, a3, a4, a5, a6 := addr(1), addr(2), addr(3), addr(4), addr(5), addr(6)
	core, rec := newCoreWithInit(t, a1, a4, types.ModalityMintAndBurn, addr(0xff))
	require.NoError(t, core.state.Roles.Grant(types.RolePauser, a6))

	require.NoError(t, core.ConfigureController(a1, rec, a2, a3))
	require.NoError(t, core.ConfigureMinterAllowance(a2, rec, types.NewAmountFromUint64(10)))
	require.NoError(t, core.Pause(a6, rec))

	paused, err := core.IsPaused()
	require.NoError(t, err)
	require.True(t, paused)

	err = core.Mint(a3, rec, a5, types.NewAmountFromUint64(5))
	require.ErrorIs(t, err, errors.ErrContractIsPaused)

	require.NoError(t, core.RemoveController(a1, rec, a2))
	require.NoError(t, core.Unpause(a6, rec))
	require.NoError(t, core.Mint(a3, rec, a5, types.NewAmountFromUint64(5)))

	paused, err = core.IsPaused()
	require.NoError(t, err)
	require.False(t, paused)
}

// Scenario 6: transfer_from spends the canonical (owner, caller) allowance.
func TestTransferFromSpendsAllowance(t *testing.T) {
	c, a1, a4 := addr(0xff), addr(1), addr(4)
	core, rec := newCoreWithInit(t, addr(0xaa), a4, types.ModalityNone, c)

	require.NoError(t, core.Approve(c, rec, a1, types.NewAmountFromUint64(456_789)))
	require.NoError(t, core.TransferFrom(a1, rec, c, a1, types.NewAmountFromUint64(200_001)))

	balC, err := core.BalanceOf(c)
	require.NoError(t, err)
	require.Equal(t, "999799999", balC.String())

	balA1, err := core.BalanceOf(a1)
	require.NoError(t, err)
	require.Equal(t, "200001", balA1.String())

	allowance, err := core.Allowance(c, a1)
	require.NoError(t, err)
	require.Equal(t, "256788", allowance.String())

	require.Equal(t, []string{
		events.TypeSetAllowance,
		events.TypeTransferFrom,
		events.TypeTransfer,
	}, rec.Types())
}

func TestAccountAndContractAddressesAreDistinctKeys(t *testing.T) {
	core := New(storage.NewMemStore())
	account := addr(7)
	contract := contractAddr(7)
	require.NotEqual(t, account, contract)

	require.NoError(t, core.state.Balances.Set(account, types.NewAmountFromUint64(1)))
	require.NoError(t, core.state.Balances.Set(contract, types.NewAmountFromUint64(2)))

	accountBalance, err := core.BalanceOf(account)
	require.NoError(t, err)
	require.Equal(t, "1", accountBalance.String())

	contractBalance, err := core.BalanceOf(contract)
	require.NoError(t, err)
	require.Equal(t, "2", contractBalance.String())
}

func TestApproveOverwritesRatherThanAccumulates(t *testing.T) {
	owner, spender := addr(1), addr(2)
	core, rec := newCoreWithInit(t, addr(0xaa), addr(0xbb), types.ModalityNone, addr(0xcc))

	require.NoError(t, core.Approve(owner, rec, spender, types.NewAmountFromUint64(5)))
	require.NoError(t, core.Approve(owner, rec, spender, types.NewAmountFromUint64(9)))

	allowance, err := core.Allowance(owner, spender)
	require.NoError(t, err)
	require.Equal(t, "9", allowance.String())
}

func TestIncreaseAllowanceSaturates(t *testing.T) {
	owner, spender := addr(1), addr(2)
	core, rec := newCoreWithInit(t, addr(0xaa), addr(0xbb), types.ModalityNone, addr(0xcc))

	max := types.AmountFromBytes32([32]byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	})
	require.NoError(t, core.Approve(owner, rec, spender, max))
	require.NoError(t, core.IncreaseAllowance(owner, rec, spender, types.NewAmountFromUint64(1)))

	allowance, err := core.Allowance(owner, spender)
	require.NoError(t, err)
	require.Equal(t, max.String(), allowance.String())
}

func TestDecreaseAllowanceSaturatesAtZero(t *testing.T) {
	owner, spender := addr(1), addr(2)
	core, rec := newCoreWithInit(t, addr(0xaa), addr(0xbb), types.ModalityNone, addr(0xcc))

	require.NoError(t, core.Approve(owner, rec, spender, types.NewAmountFromUint64(5)))
	require.NoError(t, core.DecreaseAllowance(owner, rec, spender, types.NewAmountFromUint64(3)))
	require.NoError(t, core.DecreaseAllowance(owner, rec, spender, types.NewAmountFromUint64(10)))

	allowance, err := core.Allowance(owner, spender)
	require.NoError(t, err)
	require.True(t, allowance.IsZero())
}

func TestTransferFromInsufficientAllowanceMutatesNothing(t *testing.T) {
	owner, spender := addr(1), addr(2)
	core, rec := newCoreWithInit(t, addr(0xaa), addr(0xbb), types.ModalityNone, owner)

	require.NoError(t, core.Approve(owner, rec, spender, types.NewAmountFromUint64(5)))
	before := len(rec.Events)

	err := core.TransferFrom(spender, rec, owner, spender, types.NewAmountFromUint64(6))
	require.ErrorIs(t, err, errors.ErrInsufficientAllowance)
	require.Len(t, rec.Events, before)

	allowance, err := core.Allowance(owner, spender)
	require.NoError(t, err)
	require.Equal(t, "5", allowance.String())
}

func TestBlacklistRoundTrip(t *testing.T) {
	blacklister, account := addr(4), addr(9)
	core, rec := newCoreWithInit(t, addr(1), blacklister, types.ModalityNone, addr(0xcc))

	before, err := core.IsBlacklisted(account)
	require.NoError(t, err)
	require.False(t, before)

	require.NoError(t, core.Blacklist(blacklister, rec, account))
	mid, err := core.IsBlacklisted(account)
	require.NoError(t, err)
	require.True(t, mid)

	require.NoError(t, core.Unblacklist(blacklister, rec, account))
	after, err := core.IsBlacklisted(account)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestControllerRemovalLeavesBindingInertButRoleGone(t *testing.T) {
	masterMinter, controller, minter := addr(1), addr(2), addr(3)
	core, rec := newCoreWithInit(t, masterMinter, addr(4), types.ModalityMintAndBurn, addr(0xcc))

	require.NoError(t, core.ConfigureController(masterMinter, rec, controller, minter))
	require.NoError(t, core.RemoveController(masterMinter, rec, controller))

	hasRole, err := core.hasRole(types.RoleController, controller)
	require.NoError(t, err)
	require.False(t, hasRole)

	err = core.ConfigureMinterAllowance(controller, rec, types.NewAmountFromUint64(1))
	require.ErrorIs(t, err, errors.ErrInsufficientRights)
}

func TestUpdateBlacklisterEmitsExactlyOnce(t *testing.T) {
	owner, oldBlacklister, newBlacklister := addr(1), addr(4), addr(5)
	core, rec := newCoreWithInit(t, addr(9), oldBlacklister, types.ModalityNone, addr(0xcc))
	require.NoError(t, core.state.Roles.Grant(types.RoleOwner, owner))

	require.NoError(t, core.UpdateBlacklister(owner, rec, newBlacklister))

	count := 0
	for _, ty := range rec.Types() {
		if ty == events.TypeBlacklisterChanged {
			count++
		}
	}
	require.Equal(t, 1, count)

	stillOld, err := core.hasRole(types.RoleBlacklister, oldBlacklister)
	require.NoError(t, err)
	require.False(t, stillOld)

	isNew, err := core.hasRole(types.RoleBlacklister, newBlacklister)
	require.NoError(t, err)
	require.True(t, isNew)
}
