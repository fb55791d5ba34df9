package cachekit

import "github.com/Krishna8167/cachekit/internal/dlist"

/*
tlruEngine implements Time-aware LRU: a recency list for capacity-based
eviction and an expiry list for time-based eviction, both referencing
the same entry set.

Deadlines are monotone along the expiry list in both of its modes
(ResetOnAccess true makes it LRU-by-access with deadlines refreshed on
every hit; ResetOnAccess false makes it a plain insertion-order FIFO
with deadlines fixed at insertion), so only the head ever needs
checking — never a scan.

TIME SOURCE

Same resolution as MQ (see mq.go): AccessBased=true drives an
access-tick counter, AccessBased=false drives the wall clock. A tick
or timestamp is captured once per access and compared against the
expiry head with a strict less-than: eviction fires once a deadline has
*passed*, not the instant it is reached, matching this policy's own
worked example (size=3, expire_time=2, access_based=true): the entry
inserted at tick 0 with a deadline of 2 survives the access at tick 2
and is evicted only at the access that observes tick 3.

ACCESS FLOW

On every Get or Put: sweep the expiry list head while it has expired,
evicting from both lists. Then:
  - Get hit: move to recency tail; if ResetOnAccess, refresh the
    deadline to now+ExpireInterval and move to expiry tail too.
  - Put new: install at both tails with deadline now+ExpireInterval.
  - Put replace: remove then install fresh, as above.

Capacity overflow (independent of the expiry sweep) evicts the recency
list's head.
*/
type tlruEngine struct {
	entries []tlruEntry
	free    []int
	index   map[Key]int

	recency dlist.List
	expiry  dlist.List

	capacity       int
	expireInterval int64
	accessBased    bool
	resetOnAccess  bool
	tick           int64

	hits, misses uint64
}

type tlruEntry struct {
	key              Key
	value            Value
	recPrev, recNext int
	expPrev, expNext int
	deadline         int64
	alive            bool
}

func newTLRU(cfg Config) (Engine, error) {
	if err := requirePositive(TLRU, "Size", cfg.Size); err != nil {
		return nil, err
	}
	if cfg.ExpireInterval < 0 {
		return nil, configErr(TLRU, "ExpireInterval", "must be non-negative")
	}
	return &tlruEngine{
		index:          make(map[Key]int),
		recency:        dlist.New(),
		expiry:         dlist.New(),
		capacity:       cfg.Size,
		expireInterval: int64(cfg.ExpireInterval),
		accessBased:    cfg.AccessBased,
		resetOnAccess:  cfg.ResetOnAccess,
	}, nil
}

// recencyLinker is the engine itself, addressing recPrev/recNext.
func (e *tlruEngine) Prev(h int) int { return e.entries[h].recPrev }
func (e *tlruEngine) Next(h int) int { return e.entries[h].recNext }
func (e *tlruEngine) SetPrev(h, p int) { e.entries[h].recPrev = p }
func (e *tlruEngine) SetNext(h, n int) { e.entries[h].recNext = n }

// expiryLinker addresses expPrev/expNext on the same entry arena.
type tlruExpiryLinker struct{ e *tlruEngine }

func (l tlruExpiryLinker) Prev(h int) int { return l.e.entries[h].expPrev }
func (l tlruExpiryLinker) Next(h int) int { return l.e.entries[h].expNext }
func (l tlruExpiryLinker) SetPrev(h, p int) { l.e.entries[h].expPrev = p }
func (l tlruExpiryLinker) SetNext(h, n int) { l.e.entries[h].expNext = n }

func (e *tlruEngine) el() tlruExpiryLinker { return tlruExpiryLinker{e} }

func (e *tlruEngine) now() int64 {
	if e.accessBased {
		t := e.tick
		e.tick++
		return t
	}
	return wallClockNow()
}

func (e *tlruEngine) alloc(key Key, value Value, deadline int64) int {
	ent := tlruEntry{key: key, value: value, recPrev: dlist.Nil, recNext: dlist.Nil, expPrev: dlist.Nil, expNext: dlist.Nil, deadline: deadline, alive: true}
	if n := len(e.free); n > 0 {
		h := e.free[n-1]
		e.free = e.free[:n-1]
		e.entries[h] = ent
		return h
	}
	e.entries = append(e.entries, ent)
	return len(e.entries) - 1
}

func (e *tlruEngine) evict(h int) {
	e.recency.Remove(e, h)
	e.expiry.Remove(e.el(), h)
	delete(e.index, e.entries[h].key)
	e.entries[h].alive = false
	e.entries[h].value = nil
	e.free = append(e.free, h)
}

// sweepExpired evicts every entry at the head of the expiry list whose
// deadline has strictly passed relative to now.
func (e *tlruEngine) sweepExpired(now int64) {
	for {
		head := e.expiry.Front()
		if head == dlist.Nil || e.entries[head].deadline >= now {
			return
		}
		e.evict(head)
	}
}

func (e *tlruEngine) Get(key Key, sentinel Value) Value {
	now := e.now()
	e.sweepExpired(now)

	h, ok := e.index[key]
	if !ok {
		e.misses++
		return sentinel
	}
	e.hits++

	e.recency.MoveToBack(e, h)
	if e.resetOnAccess {
		e.entries[h].deadline = now + e.expireInterval
		e.expiry.MoveToBack(e.el(), h)
	}
	return e.entries[h].value
}

func (e *tlruEngine) Put(key Key, value Value) {
	now := e.now()
	e.sweepExpired(now)

	if h, ok := e.index[key]; ok {
		e.evict(h)
	}

	if len(e.index) >= e.capacity {
		if victim := e.recency.Front(); victim != dlist.Nil {
			e.evict(victim)
		}
	}

	h := e.alloc(key, value, now+e.expireInterval)
	e.index[key] = h
	e.recency.PushBack(e, h)
	e.expiry.PushBack(e.el(), h)
}

func (e *tlruEngine) Clear() {
	e.entries = e.entries[:0]
	e.free = e.free[:0]
	e.index = make(map[Key]int)
	e.recency = dlist.New()
	e.expiry = dlist.New()
	e.tick = 0
	e.hits, e.misses = 0, 0
}

func (e *tlruEngine) Stats() Stats {
	return Stats{
		Hits:        e.hits,
		Misses:      e.misses,
		CurrentSize: uint64(len(e.index)),
		MaxSize:     uint64(e.capacity),
	}
}

// DynamicMethods advertises ExpireNow so a facade can force the expiry
// sweep outside of Get/Put, e.g. for a manual cache_expire_now() GC hook.
func (e *tlruEngine) DynamicMethods() []string { return []string{"ExpireNow"} }

// ExpireNow runs the expiry sweep immediately, using the current time
// source, without performing a Get or Put.
func (e *tlruEngine) ExpireNow() {
	e.sweepExpired(e.now())
}
