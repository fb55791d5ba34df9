package cachekit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTwoQFull_GhostQueueInformsPlacement(t *testing.T) {
	e, err := New(TwoQFull, Config{PrimarySize: 2, SecondaryInSize: 2, SecondaryOutSize: 2})
	require.NoError(t, err)

	a, b, c, d := mustKey(t, "a"), mustKey(t, "b"), mustKey(t, "c"), mustKey(t, "d")

	e.Put(a, 1)
	e.Put(b, 2)
	e.Put(c, 3) // secondary-in overflow: a demoted to the ghost queue
	e.Put(d, 4) // secondary-in overflow again: b demoted to the ghost queue

	require.Equal(t, uint64(2), e.Stats().CurrentSize, "ghosts hold no values and must not count toward CurrentSize")
	require.Equal(t, 2, e.(*twoQFullEngine).GhostSize())

	require.Nil(t, e.Get(a, nil), "a is only a ghost now: a Get must miss")

	e.Put(a, 1) // a is a recognized ghost: goes straight into primary
	require.Equal(t, 1, e.(*twoQFullEngine).GhostSize(), "a leaves the ghost queue once reinstated")
	require.Equal(t, 1, e.Get(a, nil))
}

func TestTwoQFull_SecondaryInHitDoesNotPromote(t *testing.T) {
	e, err := New(TwoQFull, Config{PrimarySize: 2, SecondaryInSize: 2, SecondaryOutSize: 2})
	require.NoError(t, err)

	a := mustKey(t, "a")
	e.Put(a, 1)
	require.Equal(t, 1, e.Get(a, nil))
	require.Equal(t, uint64(4), e.Stats().MaxSize)
	// Unlike simple 2Q, a secondary-in hit never moves the entry into
	// primary on its own — only a ghost-queue hit on Put does that.
	require.Equal(t, 0, e.(*twoQFullEngine).primary.Len())
	require.Equal(t, 1, e.(*twoQFullEngine).secondaryIn.Len())
	require.Equal(t, 0, e.(*twoQFullEngine).GhostSize())
}

func TestTwoQFull_PrimaryOverflowEvictsOutrightOnGhostReinstatement(t *testing.T) {
	e, err := New(TwoQFull, Config{PrimarySize: 1, SecondaryInSize: 1, SecondaryOutSize: 2})
	require.NoError(t, err)

	a, b, d := mustKey(t, "a"), mustKey(t, "b"), mustKey(t, "d")

	e.Put(a, 1)
	e.Put(b, 2) // secondary-in overflow: a demoted to ghost
	e.Put(a, 1) // ghost hit: a reinstated straight into primary
	e.Put(d, 4) // secondary-in overflow: b demoted to ghost
	e.Put(b, 2) // ghost hit while primary is full: a is evicted outright, b takes its place

	require.Nil(t, e.Get(a, nil))
	require.Equal(t, 2, e.Get(b, nil))
}
