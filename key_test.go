package cachekit

import "testing"

func TestCreateKey_PositionalOrderMatters(t *testing.T) {
	k1, err := CreateKey([]Value{1, 2}, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	k2, err := CreateKey([]Value{2, 1}, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k1 == k2 {
		t.Fatalf("expected different keys for different positional order")
	}
}

func TestCreateKey_KeywordOrderIgnored(t *testing.T) {
	k1, err := CreateKey(nil, map[string]Value{"a": 1, "b": 2}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	k2, err := CreateKey(nil, map[string]Value{"b": 2, "a": 1}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k1 != k2 {
		t.Fatalf("expected identical keys regardless of keyword map insertion order")
	}
}

func TestCreateKey_TypeTaggingDistinguishesNumericKinds(t *testing.T) {
	withoutTypes1, _ := CreateKey([]Value{int64(1)}, nil, false)
	withoutTypes2, _ := CreateKey([]Value{float64(1)}, nil, false)
	if withoutTypes1 != withoutTypes2 {
		t.Fatalf("expected int64(1) and float64(1) to collide without type tagging")
	}

	withTypes1, err := CreateKey([]Value{int64(1)}, nil, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withTypes2, err := CreateKey([]Value{float64(1)}, nil, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withTypes1 == withTypes2 {
		t.Fatalf("expected int64(1) and float64(1) to differ once type tagging is enabled")
	}
}

func TestCreateKey_RejectsFuncAndChan(t *testing.T) {
	if _, err := CreateKey([]Value{func() {}}, nil, false); err == nil {
		t.Fatalf("expected an error for a func argument")
	}
	if _, err := CreateKey([]Value{make(chan int)}, nil, false); err == nil {
		t.Fatalf("expected an error for a chan argument")
	}
}

func TestKey_StringIsStable(t *testing.T) {
	k1, _ := CreateKey([]Value{"x"}, nil, false)
	k2, _ := CreateKey([]Value{"x"}, nil, false)
	if k1.String() != k2.String() {
		t.Fatalf("expected equal keys to render identical strings")
	}
}
