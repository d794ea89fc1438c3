// Package genesis loads the authority manifest a deploy tool feeds into
// TokenCore.Init: the symbol/name/decimals/initial-supply and the
// MasterMinter/Owner/Pauser/Blacklister address lists. It is a distinct
// format from config.Config's TOML runtime settings — this one describes
// a one-time deployment, not a running service — so it is expressed in
// YAML.
package genesis

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tokencore/core/types"
)

// Manifest mirrors the YAML representation of a deployment's genesis
// parameters.
type Manifest struct {
	Deployer      string   `yaml:"deployer"`
	Symbol        string   `yaml:"symbol"`
	Name          string   `yaml:"name"`
	Decimals      uint8    `yaml:"decimals"`
	InitialSupply string   `yaml:"initial_supply"`
	MasterMinters []string `yaml:"master_minters"`
	Owners        []string `yaml:"owners"`
	Pausers       []string `yaml:"pausers"`
	Blacklister   string   `yaml:"blacklister"`
	MintAndBurn   bool     `yaml:"mint_and_burn"`
}

// Load reads and validates a genesis manifest from path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("genesis: read %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("genesis: decode %s: %w", path, err)
	}
	if strings.TrimSpace(m.Symbol) == "" {
		return nil, fmt.Errorf("genesis: symbol required")
	}
	if len(m.MasterMinters) == 0 {
		return nil, fmt.Errorf("genesis: at least one master_minter required")
	}
	if strings.TrimSpace(m.Blacklister) == "" {
		return nil, fmt.Errorf("genesis: blacklister required")
	}
	if strings.TrimSpace(m.Deployer) == "" {
		return nil, fmt.Errorf("genesis: deployer required")
	}
	return &m, nil
}

// DeployerAddress resolves the deployer's bech32 address.
func (m *Manifest) DeployerAddress() (types.Address, error) {
	addr, err := types.DecodeAddress(m.Deployer)
	if err != nil {
		return types.Address{}, fmt.Errorf("genesis: invalid deployer %q: %w", m.Deployer, err)
	}
	return addr, nil
}

// decodeAll bech32-decodes every entry in raw, failing on the first
// malformed address.
func decodeAll(raw []string) ([]types.Address, error) {
	out := make([]types.Address, 0, len(raw))
	for _, s := range raw {
		addr, err := types.DecodeAddress(s)
		if err != nil {
			return nil, fmt.Errorf("genesis: invalid address %q: %w", s, err)
		}
		out = append(out, addr)
	}
	return out, nil
}

// Addresses resolves every bech32 address in the manifest into a
// types.Address, for handing to token.InitParams.
func (m *Manifest) Addresses() (masterMinters, owners, pausers []types.Address, blacklister types.Address, err error) {
	masterMinters, err = decodeAll(m.MasterMinters)
	if err != nil {
		return nil, nil, nil, types.Address{}, err
	}
	owners, err = decodeAll(m.Owners)
	if err != nil {
		return nil, nil, nil, types.Address{}, err
	}
	pausers, err = decodeAll(m.Pausers)
	if err != nil {
		return nil, nil, nil, types.Address{}, err
	}
	blacklister, err = types.DecodeAddress(m.Blacklister)
	if err != nil {
		return nil, nil, nil, types.Address{}, fmt.Errorf("genesis: invalid blacklister %q: %w", m.Blacklister, err)
	}
	return masterMinters, owners, pausers, blacklister, nil
}

// InitialSupplyAmount parses InitialSupply as a decimal types.Amount.
func (m *Manifest) InitialSupplyAmount() (types.Amount, error) {
	amount, ok := types.AmountFromDecimal(m.InitialSupply)
	if !ok {
		return types.Amount{}, fmt.Errorf("genesis: invalid initial_supply %q", m.InitialSupply)
	}
	return amount, nil
}

// Modality returns the configured mint/burn modality.
func (m *Manifest) Modality() types.Modality {
	if m.MintAndBurn {
		return types.ModalityMintAndBurn
	}
	return types.ModalityNone
}
