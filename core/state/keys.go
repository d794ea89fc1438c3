// Package state implements TokenCore's ledgers as abstract map-like values
// over a storage.Backend: a BalanceLedger, an AllowanceLedger, a
// MinterAllowanceLedger, a RoleRegistry, a ControllerBinding, and scalar
// PauseFlag/BlacklisterSlot/Modality/SupplyCounter cells, rather than a
// wrapper type per field. Keys are a per-ledger prefix followed by
// keccak256 digests of the addresses involved. Amounts and metadata are
// RLP encoded; role, flag, modality and address cells store raw bytes.
package state

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"

	"tokencore/core/types"
)

// Namespace prefixes, one per ledger, so distinct ledgers never collide
// even if two addresses happen to hash the same raw bytes under different
// AddressKinds.
var (
	prefixBalance         = []byte("token/balance/")
	prefixAllowance       = []byte("token/allowance/")
	prefixMinterAllowance = []byte("token/minterallowance/")
	prefixRole            = []byte("token/role/")
	prefixController      = []byte("token/controller/")
	prefixSupply          = []byte("token/supply")
	prefixPaused          = []byte("token/paused")
	prefixBlacklister     = []byte("token/blacklister")
	prefixModality        = []byte("token/modality")
)

// addrKey derives a stable key component from an Address, folding in its
// Kind so Account and Contract addresses with identical raw payloads never
// alias to the same storage slot.
func addrKey(addr types.Address) []byte {
	tagged := append([]byte{byte(addr.Kind)}, addr.Raw[:]...)
	return crypto.Keccak256(tagged)
}

func balanceKey(owner types.Address) []byte {
	return append(append([]byte{}, prefixBalance...), addrKey(owner)...)
}

func allowanceKey(owner, spender types.Address) []byte {
	key := append([]byte{}, prefixAllowance...)
	key = append(key, addrKey(owner)...)
	key = append(key, addrKey(spender)...)
	return key
}

func minterAllowanceKey(minter types.Address) []byte {
	return append(append([]byte{}, prefixMinterAllowance...), addrKey(minter)...)
}

func roleKey(role types.Role, addr types.Address) []byte {
	key := append([]byte{}, prefixRole...)
	key = append(key, byte(role))
	key = append(key, addrKey(addr)...)
	return key
}

func controllerKey(controller types.Address) []byte {
	return append(append([]byte{}, prefixController...), addrKey(controller)...)
}

// encodeAmount/decodeAmount round-trip an Amount through RLP as its
// big-endian 32-byte form.
func encodeAmount(a types.Amount) ([]byte, error) {
	raw := a.Bytes32()
	return rlp.EncodeToBytes(raw[:])
}

func decodeAmount(data []byte) (types.Amount, error) {
	if len(data) == 0 {
		return types.ZeroAmount(), nil
	}
	var raw []byte
	if err := rlp.DecodeBytes(data, &raw); err != nil {
		return types.Amount{}, err
	}
	var buf [32]byte
	copy(buf[32-len(raw):], raw)
	return types.AmountFromBytes32(buf), nil
}
