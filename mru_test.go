package cachekit

import "testing"

func TestMRU_EvictsMostRecentlyUsed(t *testing.T) {
	e, err := New(MRU, Config{Size: 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	a, b, c, d := mustKey(t, "a"), mustKey(t, "b"), mustKey(t, "c"), mustKey(t, "d")
	e.Put(a, 1)
	e.Put(b, 2)
	e.Put(c, 3)
	e.Get(c, nil) // c becomes the MRU
	e.Put(d, 4)   // overflow: evict the MRU (c), not the LRU (a)

	if v := e.Get(c, nil); v != nil {
		t.Fatalf("expected c (the MRU) to be evicted, got %v", v)
	}
	if v := e.Get(a, nil); v != 1 {
		t.Fatalf("expected a to survive, got %v", v)
	}
	if v := e.Get(d, nil); v != 4 {
		t.Fatalf("expected d to survive, got %v", v)
	}
}
