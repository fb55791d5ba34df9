package cachekit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTLRU_EntryExpiresStrictlyAfterItsDeadline(t *testing.T) {
	e, err := New(TLRU, Config{Size: 3, ExpireInterval: 2, AccessBased: true})
	require.NoError(t, err)

	a := mustKey(t, "a")
	b := mustKey(t, "b")
	e.Put(a, 1) // tick 0, deadline 2
	e.Put(b, 2) // tick 1

	require.Equal(t, 1, e.Get(a, nil), "tick 2: deadline 2 has not yet strictly passed, still a hit")
	require.Nil(t, e.Get(a, nil), "tick 3: deadline 2 has passed, now a miss")
}

func TestTLRU_ResetOnAccessRefreshesDeadline(t *testing.T) {
	e, err := New(TLRU, Config{Size: 3, ExpireInterval: 2, AccessBased: true, ResetOnAccess: true})
	require.NoError(t, err)

	a := mustKey(t, "a")
	e.Put(a, 1) // tick 0, deadline 2
	require.Equal(t, 1, e.Get(a, nil))  // tick 1: hit, deadline refreshed to 1+2=3
	require.Equal(t, 1, e.Get(a, nil))  // tick 2: 3 >= 2, still alive, deadline refreshed to 2+2=4
	require.Equal(t, 1, e.Get(a, nil))  // tick 3: 4 >= 3, still alive
}

func TestTLRU_CapacityEvictionIsIndependentOfExpiry(t *testing.T) {
	e, err := New(TLRU, Config{Size: 2, ExpireInterval: 1000, AccessBased: true})
	require.NoError(t, err)

	a, b, c := mustKey(t, "a"), mustKey(t, "b"), mustKey(t, "c")
	e.Put(a, 1)
	e.Put(b, 2)
	e.Put(c, 3) // capacity overflow evicts the recency head (a), well before any deadline

	require.Nil(t, e.Get(a, nil))
	require.Equal(t, 2, e.Get(b, nil))
}
