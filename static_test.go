package cachekit

import "testing"

func TestStatic_NeverEvicts(t *testing.T) {
	e, err := New(Static, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 1000; i++ {
		e.Put(mustKey(t, i), i)
	}
	if s := e.Stats(); s.CurrentSize != 1000 {
		t.Fatalf("expected all 1000 entries to survive, got CurrentSize=%d", s.CurrentSize)
	}
	if s := e.Stats(); s.MaxSize != Unbounded {
		t.Fatalf("expected MaxSize to report Unbounded, got %d", s.MaxSize)
	}
}

func TestStatic_DynamicMethods(t *testing.T) {
	e, _ := New(Static, Config{})
	methods := e.DynamicMethods()
	if len(methods) != 1 || methods[0] != "Compact" {
		t.Fatalf("expected [\"Compact\"], got %v", methods)
	}
	e.(*staticEngine).Compact() // no-op; must not panic
}
