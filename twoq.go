package cachekit

import "github.com/Krishna8167/cachekit/internal/dlist"

/*
twoQEngine implements the simple two-queue policy: an LRU-ordered
primary segment and a FIFO-ordered secondary segment.

  - New keys enter secondary's tail.
  - A secondary hit promotes the entry to primary's tail, removing it
    from secondary.
  - A primary hit moves the entry to primary's tail.
  - If a promotion would overflow primary, primary's head is evicted
    immediately — unlike SLRU, there is no demotion back to secondary.
  - If a new key would overflow secondary, secondary's head is evicted.
*/
type twoQEngine struct {
	entries []twoQEntry
	free    []int
	index   map[Key]int

	primary   dlist.List
	secondary dlist.List

	primCap, secCap int
	hits, misses    uint64
}

type twoQEntry struct {
	key        Key
	value      Value
	inPrimary  bool
	prev, next int
	alive      bool
}

func newTwoQ(cfg Config) (Engine, error) {
	if err := requirePositive(TwoQ, "PrimarySize", cfg.PrimarySize); err != nil {
		return nil, err
	}
	if err := requirePositive(TwoQ, "SecondarySize", cfg.SecondarySize); err != nil {
		return nil, err
	}
	return &twoQEngine{
		index:     make(map[Key]int),
		primary:   dlist.New(),
		secondary: dlist.New(),
		primCap:   cfg.PrimarySize,
		secCap:    cfg.SecondarySize,
	}, nil
}

func (e *twoQEngine) Prev(h int) int { return e.entries[h].prev }
func (e *twoQEngine) Next(h int) int { return e.entries[h].next }
func (e *twoQEngine) SetPrev(h, p int) { e.entries[h].prev = p }
func (e *twoQEngine) SetNext(h, n int) { e.entries[h].next = n }

func (e *twoQEngine) alloc(key Key, value Value) int {
	if n := len(e.free); n > 0 {
		h := e.free[n-1]
		e.free = e.free[:n-1]
		e.entries[h] = twoQEntry{key: key, value: value, prev: dlist.Nil, next: dlist.Nil, alive: true}
		return h
	}
	e.entries = append(e.entries, twoQEntry{key: key, value: value, prev: dlist.Nil, next: dlist.Nil, alive: true})
	return len(e.entries) - 1
}

func (e *twoQEngine) drop(h int) {
	delete(e.index, e.entries[h].key)
	e.entries[h].alive = false
	e.entries[h].value = nil
	e.free = append(e.free, h)
}

func (e *twoQEngine) Get(key Key, sentinel Value) Value {
	h, ok := e.index[key]
	if !ok {
		e.misses++
		return sentinel
	}
	e.hits++

	ent := &e.entries[h]
	if ent.inPrimary {
		e.primary.MoveToBack(e, h)
		return ent.value
	}

	e.secondary.Remove(e, h)
	if e.primary.Len() >= e.primCap {
		victim := e.primary.Front()
		if victim != dlist.Nil {
			e.primary.Remove(e, victim)
			e.drop(victim)
		}
	}
	ent.inPrimary = true
	e.primary.PushBack(e, h)
	return ent.value
}

func (e *twoQEngine) Put(key Key, value Value) {
	if h, ok := e.index[key]; ok {
		if e.entries[h].inPrimary {
			e.primary.Remove(e, h)
		} else {
			e.secondary.Remove(e, h)
		}
		e.drop(h)
	}

	if e.secondary.Len() >= e.secCap {
		victim := e.secondary.Front()
		if victim != dlist.Nil {
			e.secondary.Remove(e, victim)
			e.drop(victim)
		}
	}

	h := e.alloc(key, value)
	e.index[key] = h
	e.secondary.PushBack(e, h)
}

func (e *twoQEngine) Clear() {
	e.entries = e.entries[:0]
	e.free = e.free[:0]
	e.index = make(map[Key]int)
	e.primary = dlist.New()
	e.secondary = dlist.New()
	e.hits, e.misses = 0, 0
}

func (e *twoQEngine) Stats() Stats {
	return Stats{
		Hits:        e.hits,
		Misses:      e.misses,
		CurrentSize: uint64(e.primary.Len() + e.secondary.Len()),
		MaxSize:     uint64(e.primCap + e.secCap),
	}
}

func (e *twoQEngine) DynamicMethods() []string { return nil }
