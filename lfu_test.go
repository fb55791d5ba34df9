package cachekit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLFU_EvictsLeastFrequentlyUsed(t *testing.T) {
	e, err := New(LFU, Config{Size: 2})
	require.NoError(t, err)

	a, b, c := mustKey(t, "a"), mustKey(t, "b"), mustKey(t, "c")
	e.Put(a, 1)
	e.Put(b, 2)
	e.Get(a, nil) // a: freq 2
	e.Get(a, nil) // a: freq 3
	e.Get(b, nil) // b: freq 2
	e.Put(c, 3)   // overflow: b (freq 2) loses to a (freq 3)

	require.Equal(t, 1, e.Get(a, nil))
	require.Nil(t, e.Get(b, nil))
	require.Equal(t, 3, e.Get(c, nil))
}

func TestMFU_EvictsMostFrequentlyUsed(t *testing.T) {
	e, err := New(MFU, Config{Size: 2})
	require.NoError(t, err)

	a, b, c := mustKey(t, "a"), mustKey(t, "b"), mustKey(t, "c")
	e.Put(a, 1)
	e.Put(b, 2)
	e.Get(a, nil) // a: freq 2
	e.Get(a, nil) // a: freq 3
	e.Put(c, 3)   // overflow: a (freq 3) is now the highest, MFU evicts it

	require.Nil(t, e.Get(a, nil))
	require.Equal(t, 2, e.Get(b, nil))
	require.Equal(t, 3, e.Get(c, nil))
}

func TestLFU_ReplaceResetsFrequencyToOne(t *testing.T) {
	e, err := New(LFU, Config{Size: 2})
	require.NoError(t, err)

	a, b, c := mustKey(t, "a"), mustKey(t, "b"), mustKey(t, "c")
	e.Put(a, 1)
	e.Get(a, nil) // a: freq 2
	e.Get(a, nil) // a: freq 3
	e.Get(a, nil) // a: freq 4
	e.Put(a, 2)   // replace: a drops back to freq 1, as if freshly inserted
	e.Put(b, 20)  // b: freq 1, arrives after a's freq-1 bucket already exists
	e.Put(c, 3)   // overflow: a is the oldest freq-1 entry, not b

	require.Nil(t, e.Get(a, nil))
	require.Equal(t, 20, e.Get(b, nil))
	require.Equal(t, 3, e.Get(c, nil))
}
