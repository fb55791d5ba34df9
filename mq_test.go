package cachekit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// stepQueueFunc promotes an entry by one queue level each time its
// frequency doubles: queue index = floor(log2(frequency)).
func stepQueueFunc(frequency uint64) int {
	idx := 0
	for f := frequency; f > 1; f >>= 1 {
		idx++
	}
	return idx
}

func TestMQ_PromotionMovesToHigherQueue(t *testing.T) {
	e, err := New(MQ, Config{
		Size: 10, NumQueues: 4, BufferSize: 10, ExpireTime: 1000,
		AccessBased: true, QueueFunction: stepQueueFunc,
	})
	require.NoError(t, err)

	a := mustKey(t, "a")
	e.Put(a, 1) // freq 1 -> Q0
	require.Equal(t, []int{1, 0, 0, 0}, e.(*mqEngine).QueueDepths())

	e.Get(a, nil) // freq 2 -> Q1
	require.Equal(t, []int{0, 1, 0, 0}, e.(*mqEngine).QueueDepths())

	e.Get(a, nil) // freq 3, log2(3)=1 -> stays in Q1
	require.Equal(t, []int{0, 1, 0, 0}, e.(*mqEngine).QueueDepths())

	e.Get(a, nil) // freq 4, log2(4)=2 -> Q2
	require.Equal(t, []int{0, 0, 1, 0}, e.(*mqEngine).QueueDepths())
}

func TestMQ_EvictionPrefersColdestQueue(t *testing.T) {
	e, err := New(MQ, Config{
		Size: 2, NumQueues: 2, BufferSize: 4, ExpireTime: 1000,
		AccessBased: true, QueueFunction: stepQueueFunc,
	})
	require.NoError(t, err)

	a, b, c := mustKey(t, "a"), mustKey(t, "b"), mustKey(t, "c")
	e.Put(a, 1)
	e.Get(a, nil) // a promoted to Q1
	e.Put(b, 2)   // b lands in Q0
	e.Put(c, 3)   // overflow: Q0's head (b) is evicted before touching Q1's a

	require.Nil(t, e.Get(b, nil))
	require.Equal(t, 1, e.Get(a, nil))
	require.Equal(t, 3, e.Get(c, nil))
}

func TestMQ_HistoryResumesFrequencyOnReturn(t *testing.T) {
	e, err := New(MQ, Config{
		Size: 1, NumQueues: 2, BufferSize: 4, ExpireTime: 1000,
		AccessBased: true, QueueFunction: stepQueueFunc,
	})
	require.NoError(t, err)

	a, b := mustKey(t, "a"), mustKey(t, "b")
	e.Put(a, 1) // freq 1 -> Q0
	e.Put(b, 2) // overflow: a (the only entry) is evicted into history at freq 1

	// a returns: history says its last frequency was 1, so it resumes
	// at freq 2 and lands straight in Q1 instead of restarting at Q0.
	// The resulting overflow evicts b (Q0's only occupant) instead,
	// leaving a alone in Q1 — which is only possible if a skipped Q0.
	e.Put(a, 10)
	require.Equal(t, []int{0, 1}, e.(*mqEngine).QueueDepths())
}
