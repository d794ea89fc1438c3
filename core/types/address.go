package types

import (
	"fmt"

	"github.com/btcsuite/btcutil/bech32"
)

// AddressKind distinguishes externally-owned accounts from contract
// addresses. The two variants are never interchangeable: identical
// 20-byte payloads under different kinds must compare unequal and key
// ledgers independently.
type AddressKind uint8

const (
	// AddressAccount identifies a regular externally-owned address.
	AddressAccount AddressKind = iota
	// AddressContract identifies a deployed contract address.
	AddressContract
)

func (k AddressKind) String() string {
	switch k {
	case AddressAccount:
		return "account"
	case AddressContract:
		return "contract"
	default:
		return "unknown"
	}
}

func (k AddressKind) prefix() string {
	switch k {
	case AddressContract:
		return "contract"
	default:
		return "account"
	}
}

// Address is an opaque, equality-comparable principal identifier. Equality
// is by the full tagged value (Kind and Raw together), not by the raw
// bytes alone, so Address{AddressAccount, x} != Address{AddressContract, x}
// even when x is identical.
type Address struct {
	Kind AddressKind
	Raw  [20]byte
}

// NewAccountAddress builds an externally-owned Address from 20 raw bytes.
func NewAccountAddress(raw []byte) (Address, error) {
	return newAddress(AddressAccount, raw)
}

// NewContractAddress builds a contract Address from 20 raw bytes.
func NewContractAddress(raw []byte) (Address, error) {
	return newAddress(AddressContract, raw)
}

func newAddress(kind AddressKind, raw []byte) (Address, error) {
	if len(raw) != 20 {
		return Address{}, fmt.Errorf("types: address must be 20 bytes, got %d", len(raw))
	}
	var addr Address
	addr.Kind = kind
	copy(addr.Raw[:], raw)
	return addr, nil
}

// MustNewAccountAddress is NewAccountAddress but panics on invalid input;
// reserved for test fixtures and compile-time-known constants.
func MustNewAccountAddress(raw []byte) Address {
	addr, err := NewAccountAddress(raw)
	if err != nil {
		panic(err)
	}
	return addr
}

// IsZero reports whether the address is the default (unset) value.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Bytes returns a defensive copy of the address's raw payload.
func (a Address) Bytes() []byte {
	out := make([]byte, 20)
	copy(out, a.Raw[:])
	return out
}

// String renders the address as a bech32 string tagged by kind, so
// account and contract addresses with identical payloads never print the
// same way.
func (a Address) String() string {
	conv, err := bech32.ConvertBits(a.Raw[:], 8, 5, true)
	if err != nil {
		panic(err)
	}
	encoded, err := bech32.Encode(a.Kind.prefix(), conv)
	if err != nil {
		panic(err)
	}
	return encoded
}

// DecodeAddress parses a bech32 string produced by Address.String back into
// an Address, inferring the kind from the human-readable prefix.
func DecodeAddress(s string) (Address, error) {
	prefix, data, err := bech32.Decode(s)
	if err != nil {
		return Address{}, fmt.Errorf("types: invalid bech32 address: %w", err)
	}
	conv, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, fmt.Errorf("types: invalid bech32 payload: %w", err)
	}
	switch prefix {
	case AddressAccount.prefix():
		return newAddress(AddressAccount, conv)
	case AddressContract.prefix():
		return newAddress(AddressContract, conv)
	default:
		return Address{}, fmt.Errorf("types: unrecognized address prefix %q", prefix)
	}
}
