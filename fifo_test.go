package cachekit

import "testing"

func TestFIFO_EvictsInArrivalOrder(t *testing.T) {
	e, err := New(FIFO, Config{Size: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	x, y, z := mustKey(t, "x"), mustKey(t, "y"), mustKey(t, "z")
	e.Put(x, 1)
	e.Put(y, 2)
	e.Get(x, nil) // access must NOT postpone FIFO eviction
	e.Put(z, 3)

	if v := e.Get(x, nil); v != nil {
		t.Fatalf("expected x to be evicted despite the intervening Get, got %v", v)
	}
	if v := e.Get(y, nil); v != 2 {
		t.Fatalf("expected y to survive, got %v", v)
	}
	if v := e.Get(z, nil); v != 3 {
		t.Fatalf("expected z to survive, got %v", v)
	}
}

func TestFIFO_StatsTrackSizeAndHits(t *testing.T) {
	e, _ := New(FIFO, Config{Size: 5})
	a := mustKey(t, "a")
	e.Put(a, 1)
	e.Get(a, nil)
	e.Get(mustKey(t, "missing"), nil)

	s := e.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.CurrentSize != 1 || s.MaxSize != 5 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}

func TestFIFO_Clear(t *testing.T) {
	e, _ := New(FIFO, Config{Size: 2})
	a := mustKey(t, "a")
	e.Put(a, 1)
	e.Clear()
	if v := e.Get(a, "gone"); v != "gone" {
		t.Fatalf("expected a miss after Clear, got %v", v)
	}
	if s := e.Stats(); s.CurrentSize != 0 {
		t.Fatalf("expected CurrentSize 0 after Clear, got %d", s.CurrentSize)
	}
}
