package cachekit

import "testing"

func TestLIFO_EvictsMostRecentArrival(t *testing.T) {
	e, err := New(LIFO, Config{Size: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	x, y, z := mustKey(t, "x"), mustKey(t, "y"), mustKey(t, "z")
	e.Put(x, 1)
	e.Put(y, 2)
	e.Put(z, 3) // LIFO: the newest arrival (y) is the eviction victim

	if v := e.Get(x, nil); v != 1 {
		t.Fatalf("expected x to survive, got %v", v)
	}
	if v := e.Get(z, nil); v != 3 {
		t.Fatalf("expected z to survive, got %v", v)
	}
}

func TestLIFO_ReplaceDoesNotEvict(t *testing.T) {
	e, _ := New(LIFO, Config{Size: 1})
	a := mustKey(t, "a")
	e.Put(a, 1)
	e.Put(a, 2)
	if v := e.Get(a, nil); v != 2 {
		t.Fatalf("expected replaced value 2, got %v", v)
	}
	if s := e.Stats(); s.CurrentSize != 1 {
		t.Fatalf("expected CurrentSize 1 after replace, got %d", s.CurrentSize)
	}
}
