package cachekit

import (
	"errors"
	"fmt"
)

// Sentinel errors callers can match with errors.Is.
var (
	// ErrInvalidConfiguration is returned (wrapped in a *ConfigError) when
	// New is called with a non-positive size, a sub-capacity that can't
	// satisfy the policy, a queue count below 2 for multi-queue policies,
	// a negative expiry interval, or a required parameter left unset.
	ErrInvalidConfiguration = errors.New("cachekit: invalid configuration")

	// ErrInvalidKey is returned by CreateKey when an argument cannot be
	// made hashable/equatable by the canonicalization scheme.
	ErrInvalidKey = errors.New("cachekit: invalid key")
)

// ConfigError describes why a particular engine configuration was
// rejected at construction time.
type ConfigError struct {
	Policy Policy
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("cachekit: invalid configuration for %s: field %q: %s", e.Policy, e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidConfiguration) succeed for any
// *ConfigError.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }

func configErr(policy Policy, field, reason string) error {
	return &ConfigError{Policy: policy, Field: field, Reason: reason}
}

// KeyError describes why CreateKey rejected a given argument list.
type KeyError struct {
	Reason string
}

func (e *KeyError) Error() string { return "cachekit: invalid key: " + e.Reason }

func (e *KeyError) Unwrap() error { return ErrInvalidKey }
