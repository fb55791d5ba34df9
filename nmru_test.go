package cachekit

import "testing"

// stubSource is a deterministic randsrc.Source-compatible stand-in:
// it always returns the configured value, clamped into [0, n).
type stubSource struct{ next int }

func (s stubSource) Intn(n int) int {
	if s.next >= n {
		return n - 1
	}
	return s.next
}

func TestNMRU_NeverEvictsTheMostRecentInsert(t *testing.T) {
	e, err := New(NMRU, Config{Size: 3, RandomSource: stubSource{next: 0}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	a, b, c, d := mustKey(t, "a"), mustKey(t, "b"), mustKey(t, "c"), mustKey(t, "d")
	e.Put(a, 1)
	e.Put(b, 2)
	e.Put(c, 3) // c is now "most recent"
	e.Put(d, 4) // overflow: victim must come from {a, b}, never c

	if v := e.Get(c, nil); v != 3 {
		t.Fatalf("expected the most-recently-inserted key c to survive, got %v", v)
	}
	if v := e.Get(d, nil); v != 4 {
		t.Fatalf("expected the new key d to be present, got %v", v)
	}
	if s := e.Stats(); s.CurrentSize != 3 {
		t.Fatalf("expected CurrentSize to stay at capacity 3, got %d", s.CurrentSize)
	}
}

func TestNMRU_ReplaceUpdatesMostRecentWithoutEviction(t *testing.T) {
	e, _ := New(NMRU, Config{Size: 2, RandomSource: stubSource{next: 0}})
	a, b := mustKey(t, "a"), mustKey(t, "b")
	e.Put(a, 1)
	e.Put(b, 2)
	e.Put(a, 10) // replace, no overflow triggered

	if v := e.Get(a, nil); v != 10 {
		t.Fatalf("expected replaced value 10, got %v", v)
	}
	if v := e.Get(b, nil); v != 2 {
		t.Fatalf("expected b untouched, got %v", v)
	}
}
