package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBalanceCachePutGetRoundTrip(t *testing.T) {
	cache, err := OpenBalanceCache("")
	require.NoError(t, err)
	defer cache.Close()

	_, _, ok, err := cache.get("account1abc")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, cache.put("account1abc", "1000"))
	balance, age, ok, err := cache.get("account1abc")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "1000", balance)
	require.Less(t, age, time.Second)

	require.NoError(t, cache.put("account1abc", "750"))
	balance, _, ok, err = cache.get("account1abc")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "750", balance)
}
