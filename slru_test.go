package cachekit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSLRU_PromotionAndCombinedCapacityEviction(t *testing.T) {
	e, err := New(SLRU, Config{ProbationarySize: 2, ProtectedSize: 2})
	require.NoError(t, err)

	a, b, c, d := mustKey(t, "a"), mustKey(t, "b"), mustKey(t, "c"), mustKey(t, "d")
	ee := mustKey(t, "e")

	e.Put(a, 1)
	e.Put(b, 2)
	e.Put(c, 3)
	e.Put(d, 4)
	e.Get(a, nil) // promotes a to protected
	e.Get(b, nil) // promotes b to protected
	e.Put(ee, 5)  // whole cache (4) now full: probationary's head (c) is evicted

	require.Equal(t, 1, e.Get(a, nil), "a should have been promoted out of probationary before the combined cap was hit")
	require.Equal(t, 2, e.Get(b, nil), "b should have been promoted out of probationary before the combined cap was hit")
	require.Nil(t, e.Get(c, nil), "c should be evicted once probationary+protected reaches capacity")
	require.Equal(t, 4, e.Get(d, nil))
	require.Equal(t, 5, e.Get(ee, nil))

	s := e.Stats()
	require.Equal(t, uint64(4), s.CurrentSize)
	require.Equal(t, uint64(4), s.MaxSize)
}

func TestSLRU_ProtectedOverflowDemotesRatherThanEvicts(t *testing.T) {
	e, err := New(SLRU, Config{ProbationarySize: 3, ProtectedSize: 1})
	require.NoError(t, err)

	a, b, c := mustKey(t, "a"), mustKey(t, "b"), mustKey(t, "c")
	e.Put(a, 1)
	e.Put(b, 2)
	e.Get(a, nil) // a -> protected (protected now full at cap 1)
	e.Get(b, nil) // b -> protected, demotes a back to probationary's tail

	require.Equal(t, 1, e.Get(a, nil), "a must survive the demotion, not be dropped")
	require.Equal(t, 2, e.Get(b, nil))
	_ = c
}
