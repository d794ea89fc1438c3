package genesis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tokencore/core/types"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "genesis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadValidManifest(t *testing.T) {
	deployer := types.MustNewAccountAddress(make([]byte, 20))
	path := writeManifest(t, `
deployer: "`+deployer.String()+`"
symbol: TKN
name: Token
decimals: 2
initial_supply: "1000000000"
master_minters: ["`+deployer.String()+`"]
owners: []
pausers: []
blacklister: "`+deployer.String()+`"
mint_and_burn: true
`)

	m, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "TKN", m.Symbol)

	resolvedDeployer, err := m.DeployerAddress()
	require.NoError(t, err)
	require.Equal(t, deployer, resolvedDeployer)

	masterMinters, owners, pausers, blacklister, err := m.Addresses()
	require.NoError(t, err)
	require.Len(t, masterMinters, 1)
	require.Empty(t, owners)
	require.Empty(t, pausers)
	require.Equal(t, deployer, blacklister)

	supply, err := m.InitialSupplyAmount()
	require.NoError(t, err)
	require.Equal(t, "1000000000", supply.String())

	require.Equal(t, types.ModalityMintAndBurn, m.Modality())
}

func TestLoadRejectsMissingSymbol(t *testing.T) {
	path := writeManifest(t, `
name: Token
blacklister: "x"
master_minters: ["x"]
`)
	_, err := Load(path)
	require.Error(t, err)
}
