package cachekit

import "github.com/Krishna8167/cachekit/internal/dlist"

/*
slruEngine implements Segmented LRU: a probationary FIFO segment feeding
a protected LRU segment.

  - New keys enter probationary's tail.
  - A probationary hit promotes the entry to protected's tail; if
    protected is already full, its head is demoted back to
    probationary's tail (not evicted — SLRU never drops a promoted
    entry just to make room for another promotion).
  - A protected hit moves the entry to protected's tail.
  - Probationary has no independent hard cap of its own: it absorbs
    every not-yet-promoted entry up to the combined capacity. Eviction
    (probationary's head) only fires when a brand new key arrives and
    probationary+protected together are already at ProbationarySize +
    ProtectedSize — classic segmented LRU, where "probationary full"
    means the whole cache is full and nothing has been promoted out of
    the way, not that probationary's own count has hit a fixed ceiling.

CurrentSize is the sum of both segments; MaxSize is ProbationarySize +
ProtectedSize.
*/
type slruEngine struct {
	entries []slruEntry
	free    []int
	index   map[Key]int

	probationary dlist.List
	protected    dlist.List

	probCap, protCap int
	hits, misses     uint64
}

type slruEntry struct {
	key         Key
	value       Value
	inProtected bool
	prev, next  int
	alive       bool
}

func newSLRU(cfg Config) (Engine, error) {
	if err := requirePositive(SLRU, "ProbationarySize", cfg.ProbationarySize); err != nil {
		return nil, err
	}
	if err := requirePositive(SLRU, "ProtectedSize", cfg.ProtectedSize); err != nil {
		return nil, err
	}
	return &slruEngine{
		index:        make(map[Key]int),
		probationary: dlist.New(),
		protected:    dlist.New(),
		probCap:      cfg.ProbationarySize,
		protCap:      cfg.ProtectedSize,
	}, nil
}

func (e *slruEngine) Prev(h int) int { return e.entries[h].prev }
func (e *slruEngine) Next(h int) int { return e.entries[h].next }
func (e *slruEngine) SetPrev(h, p int) { e.entries[h].prev = p }
func (e *slruEngine) SetNext(h, n int) { e.entries[h].next = n }

func (e *slruEngine) alloc(key Key, value Value) int {
	if n := len(e.free); n > 0 {
		h := e.free[n-1]
		e.free = e.free[:n-1]
		e.entries[h] = slruEntry{key: key, value: value, prev: dlist.Nil, next: dlist.Nil, alive: true}
		return h
	}
	e.entries = append(e.entries, slruEntry{key: key, value: value, prev: dlist.Nil, next: dlist.Nil, alive: true})
	return len(e.entries) - 1
}

func (e *slruEngine) release(h int) {
	e.entries[h].alive = false
	e.entries[h].value = nil
	e.free = append(e.free, h)
}

func (e *slruEngine) Get(key Key, sentinel Value) Value {
	h, ok := e.index[key]
	if !ok {
		e.misses++
		return sentinel
	}
	e.hits++

	ent := &e.entries[h]
	if ent.inProtected {
		e.protected.MoveToBack(e, h)
		return ent.value
	}

	e.probationary.Remove(e, h)
	ent.inProtected = true
	if e.protected.Len() >= e.protCap {
		demoted := e.protected.Front()
		e.protected.Remove(e, demoted)
		e.entries[demoted].inProtected = false
		e.probationary.PushBack(e, demoted)
	}
	e.protected.PushBack(e, h)
	return ent.value
}

func (e *slruEngine) Put(key Key, value Value) {
	if h, ok := e.index[key]; ok {
		if e.entries[h].inProtected {
			e.protected.Remove(e, h)
		} else {
			e.probationary.Remove(e, h)
		}
		delete(e.index, key)
		e.release(h)
	}

	// Probationary has no independent hard cap: it absorbs everything
	// that hasn't (yet) been promoted, up to the combined capacity.
	// Eviction fires only once the whole cache — probationary plus
	// protected — is full, matching classic segmented-LRU.
	if e.probationary.Len()+e.protected.Len() >= e.probCap+e.protCap {
		victim := e.probationary.Front()
		if victim != dlist.Nil {
			e.probationary.Remove(e, victim)
			delete(e.index, e.entries[victim].key)
			e.release(victim)
		}
	}

	h := e.alloc(key, value)
	e.index[key] = h
	e.probationary.PushBack(e, h)
}

func (e *slruEngine) Clear() {
	e.entries = e.entries[:0]
	e.free = e.free[:0]
	e.index = make(map[Key]int)
	e.probationary = dlist.New()
	e.protected = dlist.New()
	e.hits, e.misses = 0, 0
}

func (e *slruEngine) Stats() Stats {
	return Stats{
		Hits:        e.hits,
		Misses:      e.misses,
		CurrentSize: uint64(e.probationary.Len() + e.protected.Len()),
		MaxSize:     uint64(e.probCap + e.protCap),
	}
}

func (e *slruEngine) DynamicMethods() []string { return nil }
