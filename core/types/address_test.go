package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccountAndContractAddressesWithIdenticalPayloadAreUnequal(t *testing.T) {
	raw := make([]byte, 20)
	raw[19] = 0x7f

	account, err := NewAccountAddress(raw)
	require.NoError(t, err)
	contract, err := NewContractAddress(raw)
	require.NoError(t, err)

	require.NotEqual(t, account, contract)
	require.NotEqual(t, account.String(), contract.String())
}

func TestAddressStringRoundTrip(t *testing.T) {
	raw := make([]byte, 20)
	raw[0], raw[19] = 0x01, 0xff

	original, err := NewContractAddress(raw)
	require.NoError(t, err)

	decoded, err := DecodeAddress(original.String())
	require.NoError(t, err)
	require.Equal(t, original, decoded)
}

func TestNewAddressRejectsWrongLength(t *testing.T) {
	_, err := NewAccountAddress(make([]byte, 19))
	require.Error(t, err)
}
