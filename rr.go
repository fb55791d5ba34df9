package cachekit

import "github.com/Krishna8167/cachekit/internal/randsrc"

// rrEngine implements Random Replacement: on overflow the victim is
// chosen uniformly at random from every present key. As with NMRU, a
// parallel key vector plus a reverse index gives O(1) random selection
// and O(1) removal via swap-with-last-then-pop.
type rrEngine struct {
	values       map[Key]Value
	keys         []Key
	pos          map[Key]int
	maxSize      int
	hits, misses uint64
	rnd          randsrc.Source
}

func newRR(cfg Config) (Engine, error) {
	if err := requirePositive(RR, "Size", cfg.Size); err != nil {
		return nil, err
	}
	rnd := cfg.RandomSource
	if rnd == nil {
		rnd = randsrc.Default(0)
	}
	return &rrEngine{
		values:  make(map[Key]Value),
		keys:    make([]Key, 0, cfg.Size),
		pos:     make(map[Key]int),
		maxSize: cfg.Size,
		rnd:     rnd,
	}, nil
}

func (e *rrEngine) Get(key Key, sentinel Value) Value {
	v, ok := e.values[key]
	if !ok {
		e.misses++
		return sentinel
	}
	e.hits++
	return v
}

func (e *rrEngine) Put(key Key, value Value) {
	if _, ok := e.values[key]; ok {
		e.values[key] = value
		return
	}

	if len(e.keys) >= e.maxSize {
		e.evictVictim()
	}

	e.pos[key] = len(e.keys)
	e.keys = append(e.keys, key)
	e.values[key] = value
}

func (e *rrEngine) evictVictim() {
	n := len(e.keys)
	if n == 0 {
		return
	}
	idx := e.rnd.Intn(n)
	victim := e.keys[idx]

	last := n - 1
	e.keys[idx] = e.keys[last]
	e.pos[e.keys[idx]] = idx
	e.keys = e.keys[:last]

	delete(e.values, victim)
	delete(e.pos, victim)
}

func (e *rrEngine) Clear() {
	e.values = make(map[Key]Value)
	e.keys = e.keys[:0]
	e.pos = make(map[Key]int)
	e.hits, e.misses = 0, 0
}

func (e *rrEngine) Stats() Stats {
	return Stats{Hits: e.hits, Misses: e.misses, CurrentSize: uint64(len(e.keys)), MaxSize: uint64(e.maxSize)}
}

func (e *rrEngine) DynamicMethods() []string { return nil }
