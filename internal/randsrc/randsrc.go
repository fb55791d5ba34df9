// Package randsrc supplies the injectable random source RR and NMRU need
// for victim selection, so tests can pin a seed and assert a specific
// eviction outcome instead of tolerating any of N possibilities.
package randsrc

import "math/rand"

// Source picks a uniform random integer in [0, n).
type Source interface {
	Intn(n int) int
}

// Default returns a Source backed by a seeded math/rand generator. Two
// Defaults built with the same seed produce the same sequence.
func Default(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
