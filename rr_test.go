package cachekit

import "testing"

func TestRR_EvictsTheIndexedRandomChoice(t *testing.T) {
	// With Size=2 and keys inserted in order a, b, stubSource{next: 0}
	// always selects index 0 — whichever key currently sits there.
	e, err := New(RR, Config{Size: 2, RandomSource: stubSource{next: 0}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	a, b, c := mustKey(t, "a"), mustKey(t, "b"), mustKey(t, "c")
	e.Put(a, 1)
	e.Put(b, 2)
	e.Put(c, 3) // overflow: index 0 (a) is evicted

	if v := e.Get(a, nil); v != nil {
		t.Fatalf("expected a to be evicted, got %v", v)
	}
	if v := e.Get(b, nil); v != 2 {
		t.Fatalf("expected b to survive, got %v", v)
	}
	if v := e.Get(c, nil); v != 3 {
		t.Fatalf("expected c to survive, got %v", v)
	}
}

func TestRR_StatsAndClear(t *testing.T) {
	e, _ := New(RR, Config{Size: 4, RandomSource: stubSource{next: 0}})
	a := mustKey(t, "a")
	e.Put(a, 1)
	e.Get(a, nil)
	e.Get(mustKey(t, "missing"), nil)

	if s := e.Stats(); s.Hits != 1 || s.Misses != 1 {
		t.Fatalf("unexpected stats: %+v", s)
	}
	e.Clear()
	if s := e.Stats(); s.CurrentSize != 0 || s.Hits != 0 || s.Misses != 0 {
		t.Fatalf("expected zeroed stats after Clear, got %+v", s)
	}
}
