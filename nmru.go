package cachekit

import "github.com/Krishna8167/cachekit/internal/randsrc"

/*
nmruEngine implements Not-Most-Recently-Used eviction: on overflow the
victim is chosen uniformly at random from every key except the one most
recently inserted (or re-inserted via Put).

No ordering list is needed — only the index, a parallel key vector for
O(1) random selection, and a single remembered key. Removal is handled
with the classic swap-with-last-then-pop trick so no key ever needs to
shift the rest of the vector.

Uniform selection excluding one known index works by picking r in
[0, n-1) and bumping it past the excluded index if it would land on or
after it — this samples each of the n-1 remaining positions with equal
probability without materializing a filtered list.
*/
type nmruEngine struct {
	values map[Key]Value
	keys   []Key
	pos    map[Key]int

	mostRecent   Key
	haveRecent   bool
	maxSize      int
	hits, misses uint64
	rnd          randsrc.Source
}

func newNMRU(cfg Config) (Engine, error) {
	if err := requirePositive(NMRU, "Size", cfg.Size); err != nil {
		return nil, err
	}
	rnd := cfg.RandomSource
	if rnd == nil {
		rnd = randsrc.Default(0)
	}
	return &nmruEngine{
		values:  make(map[Key]Value),
		keys:    make([]Key, 0, cfg.Size),
		pos:     make(map[Key]int),
		maxSize: cfg.Size,
		rnd:     rnd,
	}, nil
}

func (e *nmruEngine) Get(key Key, sentinel Value) Value {
	v, ok := e.values[key]
	if !ok {
		e.misses++
		return sentinel
	}
	e.hits++
	return v
}

func (e *nmruEngine) Put(key Key, value Value) {
	if _, ok := e.values[key]; ok {
		e.values[key] = value
		e.mostRecent, e.haveRecent = key, true
		return
	}

	if len(e.keys) >= e.maxSize {
		e.evictVictim()
	}

	e.pos[key] = len(e.keys)
	e.keys = append(e.keys, key)
	e.values[key] = value
	e.mostRecent, e.haveRecent = key, true
}

func (e *nmruEngine) evictVictim() {
	n := len(e.keys)
	if n == 0 {
		return
	}

	var victimIdx int
	if n == 1 {
		victimIdx = 0
	} else if !e.haveRecent {
		victimIdx = e.rnd.Intn(n)
	} else {
		excluded := e.pos[e.mostRecent]
		r := e.rnd.Intn(n - 1)
		if r >= excluded {
			r++
		}
		victimIdx = r
	}

	victim := e.keys[victimIdx]
	e.removeAt(victimIdx)
	delete(e.values, victim)
	delete(e.pos, victim)
}

func (e *nmruEngine) removeAt(idx int) {
	last := len(e.keys) - 1
	e.keys[idx] = e.keys[last]
	e.pos[e.keys[idx]] = idx
	e.keys = e.keys[:last]
}

func (e *nmruEngine) Clear() {
	e.values = make(map[Key]Value)
	e.keys = e.keys[:0]
	e.pos = make(map[Key]int)
	e.haveRecent = false
	e.hits, e.misses = 0, 0
}

func (e *nmruEngine) Stats() Stats {
	return Stats{Hits: e.hits, Misses: e.misses, CurrentSize: uint64(len(e.keys)), MaxSize: uint64(e.maxSize)}
}

func (e *nmruEngine) DynamicMethods() []string { return nil }
