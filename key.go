package cachekit

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Key is the opaque, comparable composite value every engine indexes
// entries by. The core never inspects its structure; it only hashes and
// compares it (Go gives both for free since Key is a struct wrapping a
// single string, making it usable directly as a map key).
type Key struct {
	digest string
}

// String returns the canonical form of the key, useful for logging and
// debugging; it is not part of the equality contract beyond what the
// underlying digest already provides.
func (k Key) String() string { return k.digest }

// CreateKey canonicalizes call arguments into a Key. Positional
// arguments are flattened in the given order; keyword arguments are
// sorted by name first, so that two logically identical calls with
// keyword arguments supplied in different source order still hash to
// the same Key. When includeTypes is true, each value is tagged with a
// stable type designator before hashing, so that e.g. int64(1) and
// float64(1) build distinct keys even though they format identically.
func CreateKey(positional []Value, keyword map[string]Value, includeTypes bool) (Key, error) {
	var b strings.Builder

	for i, v := range positional {
		if i > 0 {
			b.WriteByte('\x1f')
		}
		if err := writeCanonical(&b, v, includeTypes); err != nil {
			return Key{}, err
		}
	}

	if len(keyword) > 0 {
		names := make([]string, 0, len(keyword))
		for name := range keyword {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteByte('\x1e')
		for i, name := range names {
			if i > 0 {
				b.WriteByte('\x1f')
			}
			b.WriteString(name)
			b.WriteByte('=')
			if err := writeCanonical(&b, keyword[name], includeTypes); err != nil {
				return Key{}, err
			}
		}
	}

	return Key{digest: b.String()}, nil
}

// writeCanonical appends a deterministic textual form of v. Funcs and
// channels have no content-based equality, so they're rejected rather
// than silently keyed by pointer identity (which would make two
// equivalent calls produce different keys on every invocation).
func writeCanonical(b *strings.Builder, v Value, includeTypes bool) error {
	if v != nil {
		switch reflect.ValueOf(v).Kind() {
		case reflect.Func, reflect.Chan:
			return &KeyError{Reason: fmt.Sprintf("argument of kind %s has no content-based equality", reflect.ValueOf(v).Kind())}
		}
	}

	if includeTypes {
		b.WriteString(typeDesignator(v))
		b.WriteByte(':')
	}
	fmt.Fprintf(b, "%#v", v)
	return nil
}

// typeDesignator returns a stable, process-consistent label for v's
// type. It need not match Go's own type string exactly — only be
// consistent across calls within a process, per the Key Builder
// contract.
func typeDesignator(v Value) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
