package cachekit

import "github.com/Krishna8167/cachekit/internal/dlist"

/*
twoQFullEngine implements full 2Q: primary (LRU), secondary-in (FIFO),
and secondary-out — a FIFO ghost buffer holding keys only, no values.

  - New keys enter secondary-in's tail.
  - A secondary-in hit does not move the entry; it stays exactly where
    it is.
  - A primary hit moves the entry to primary's tail.
  - A Get that only finds the key in the ghost buffer returns the
    sentinel — a miss at the caller boundary — but the ghost membership
    itself is what lets the next Put recognize the key and place it
    directly into primary.
  - On Put of a key present in secondary-out: remove from the ghost
    buffer, install in primary's tail. If primary is full, its head is
    evicted outright (no demotion — same immediate-eviction discipline
    as the simple TwoQ's primary segment).
  - On Put of a genuinely new key: install in secondary-in's tail. If
    secondary-in overflows, move its head into secondary-out's tail,
    discarding the value. If secondary-out overflows, drop its head.

CurrentSize counts only value-bearing entries (primary + secondary-in);
ghost membership is tracked separately and never contributes to it.
MaxSize is PrimarySize + SecondaryInSize — the value-bearing capacity.
*/
type twoQFullEngine struct {
	entries []tqfEntry
	free    []int
	index   map[Key]int

	primary     dlist.List
	secondaryIn dlist.List

	ghosts       []tqfGhost
	freeGhosts   []int
	ghostIndex   map[Key]int
	secondaryOut dlist.List

	primCap, secInCap, secOutCap int
	hits, misses                 uint64
}

type tqfEntry struct {
	key        Key
	value      Value
	inPrimary  bool
	prev, next int
	alive      bool
}

type tqfGhost struct {
	key        Key
	prev, next int
	alive      bool
}

func newTwoQFull(cfg Config) (Engine, error) {
	if err := requirePositive(TwoQFull, "PrimarySize", cfg.PrimarySize); err != nil {
		return nil, err
	}
	if err := requirePositive(TwoQFull, "SecondaryInSize", cfg.SecondaryInSize); err != nil {
		return nil, err
	}
	if err := requirePositive(TwoQFull, "SecondaryOutSize", cfg.SecondaryOutSize); err != nil {
		return nil, err
	}
	return &twoQFullEngine{
		index:        make(map[Key]int),
		ghostIndex:   make(map[Key]int),
		primary:      dlist.New(),
		secondaryIn:  dlist.New(),
		secondaryOut: dlist.New(),
		primCap:      cfg.PrimarySize,
		secInCap:     cfg.SecondaryInSize,
		secOutCap:    cfg.SecondaryOutSize,
	}, nil
}

// entryLinker is implemented directly on the engine for the value-bearing
// entry arena (primary + secondary-in share one pair of sibling fields,
// since an entry is only ever in one of the two at a time).
func (e *twoQFullEngine) Prev(h int) int { return e.entries[h].prev }
func (e *twoQFullEngine) Next(h int) int { return e.entries[h].next }
func (e *twoQFullEngine) SetPrev(h, p int) { e.entries[h].prev = p }
func (e *twoQFullEngine) SetNext(h, n int) { e.entries[h].next = n }

// ghostLinker adapts the ghost arena's sibling fields for secondaryOut.
type ghostLinker struct{ e *twoQFullEngine }

func (g ghostLinker) Prev(h int) int { return g.e.ghosts[h].prev }
func (g ghostLinker) Next(h int) int { return g.e.ghosts[h].next }
func (g ghostLinker) SetPrev(h, p int) { g.e.ghosts[h].prev = p }
func (g ghostLinker) SetNext(h, n int) { g.e.ghosts[h].next = n }

func (e *twoQFullEngine) gl() ghostLinker { return ghostLinker{e} }

func (e *twoQFullEngine) allocEntry(key Key, value Value) int {
	if n := len(e.free); n > 0 {
		h := e.free[n-1]
		e.free = e.free[:n-1]
		e.entries[h] = tqfEntry{key: key, value: value, prev: dlist.Nil, next: dlist.Nil, alive: true}
		return h
	}
	e.entries = append(e.entries, tqfEntry{key: key, value: value, prev: dlist.Nil, next: dlist.Nil, alive: true})
	return len(e.entries) - 1
}

func (e *twoQFullEngine) dropEntry(h int) {
	delete(e.index, e.entries[h].key)
	e.entries[h].alive = false
	e.entries[h].value = nil
	e.free = append(e.free, h)
}

func (e *twoQFullEngine) allocGhost(key Key) int {
	if n := len(e.freeGhosts); n > 0 {
		h := e.freeGhosts[n-1]
		e.freeGhosts = e.freeGhosts[:n-1]
		e.ghosts[h] = tqfGhost{key: key, prev: dlist.Nil, next: dlist.Nil, alive: true}
		return h
	}
	e.ghosts = append(e.ghosts, tqfGhost{key: key, prev: dlist.Nil, next: dlist.Nil, alive: true})
	return len(e.ghosts) - 1
}

func (e *twoQFullEngine) dropGhost(h int) {
	delete(e.ghostIndex, e.ghosts[h].key)
	e.ghosts[h].alive = false
	e.freeGhosts = append(e.freeGhosts, h)
}

func (e *twoQFullEngine) Get(key Key, sentinel Value) Value {
	if h, ok := e.index[key]; ok {
		e.hits++
		ent := &e.entries[h]
		if ent.inPrimary {
			e.primary.MoveToBack(e, h)
		}
		return ent.value
	}
	e.misses++
	return sentinel
}

func (e *twoQFullEngine) Put(key Key, value Value) {
	if h, ok := e.index[key]; ok {
		if e.entries[h].inPrimary {
			e.primary.Remove(e, h)
		} else {
			e.secondaryIn.Remove(e, h)
		}
		e.dropEntry(h)
	}

	if gh, ok := e.ghostIndex[key]; ok {
		e.secondaryOut.Remove(e.gl(), gh)
		e.dropGhost(gh)

		if e.primary.Len() >= e.primCap {
			victim := e.primary.Front()
			if victim != dlist.Nil {
				e.primary.Remove(e, victim)
				e.dropEntry(victim)
			}
		}

		h := e.allocEntry(key, value)
		e.index[key] = h
		e.entries[h].inPrimary = true
		e.primary.PushBack(e, h)
		return
	}

	h := e.allocEntry(key, value)
	e.index[key] = h
	e.secondaryIn.PushBack(e, h)

	if e.secondaryIn.Len() > e.secInCap {
		demoted := e.secondaryIn.Front()
		e.secondaryIn.Remove(e, demoted)
		demotedKey := e.entries[demoted].key
		e.dropEntry(demoted)

		gh := e.allocGhost(demotedKey)
		e.ghostIndex[demotedKey] = gh
		e.secondaryOut.PushBack(e.gl(), gh)

		if e.secondaryOut.Len() > e.secOutCap {
			oldest := e.secondaryOut.Front()
			e.secondaryOut.Remove(e.gl(), oldest)
			e.dropGhost(oldest)
		}
	}
}

func (e *twoQFullEngine) Clear() {
	e.entries = e.entries[:0]
	e.free = e.free[:0]
	e.index = make(map[Key]int)
	e.ghosts = e.ghosts[:0]
	e.freeGhosts = e.freeGhosts[:0]
	e.ghostIndex = make(map[Key]int)
	e.primary = dlist.New()
	e.secondaryIn = dlist.New()
	e.secondaryOut = dlist.New()
	e.hits, e.misses = 0, 0
}

func (e *twoQFullEngine) Stats() Stats {
	return Stats{
		Hits:        e.hits,
		Misses:      e.misses,
		CurrentSize: uint64(e.primary.Len() + e.secondaryIn.Len()),
		MaxSize:     uint64(e.primCap + e.secInCap),
	}
}

// DynamicMethods advertises GhostSize so the facade can expose ghost
// occupancy without reaching into engine internals.
func (e *twoQFullEngine) DynamicMethods() []string { return []string{"GhostSize"} }

// GhostSize reports the current number of keys held in secondary-out.
func (e *twoQFullEngine) GhostSize() int { return e.secondaryOut.Len() }
