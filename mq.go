package cachekit

import "github.com/Krishna8167/cachekit/internal/dlist"

/*
mqEngine implements the Multi-Queue policy: N LRU sub-queues Q0..Q_{N-1}
(Q0 coldest) plus a FIFO history buffer recording keys recently evicted
along with their last-known frequency, so a returning key resumes
roughly where it left off instead of restarting at frequency 1.

TIME SOURCE

AccessBased selects between an access-tick counter (incremented once
per Get/Put call) and a wall clock. The worked example in the policy's
own testable properties ("after E accesses without touching k") only
makes sense under tick semantics, so AccessBased=true selects the tick
counter here and AccessBased=false selects time.Now — the name tracks
the parameter's intuitive meaning even though the narrative prose it
was distilled from states the opposite; see DESIGN.md.

AGING

Every access inspects only queue heads, from Q_{N-1} down to Q1: if a
head's expiry deadline has passed, it demotes to the tail of the next
lower queue with a fresh deadline. This bounds per-access work by the
queue count regardless of how stale the cache has gotten, because a
demotion this access corresponds to a past access that installed or
promoted that exact entry.

PROMOTION

A hit on an entry in Q_k increments its frequency, computes
target = clamp(QueueFunction(frequency), 0, N-1), and moves the entry
to Q_target's tail if target > k, or just refreshes it at Q_k's tail
otherwise.
*/
type mqEngine struct {
	entries []mqEntry
	free    []int
	index   map[Key]int

	queues []dlist.List

	hist      []mqHistEntry
	freeHist  []int
	histIndex map[Key]int
	histList  dlist.List

	capacity    int
	numQueues   int
	historyCap  int
	expire      int64
	accessBased bool
	queueFunc   QueueFunc
	tick        int64

	hits, misses uint64
}

type mqEntry struct {
	key        Key
	value      Value
	freq       uint64
	expiry     int64
	queueIdx   int
	prev, next int
	alive      bool
}

type mqHistEntry struct {
	key        Key
	freq       uint64
	prev, next int
	alive      bool
}

func newMQ(cfg Config) (Engine, error) {
	if err := requirePositive(MQ, "Size", cfg.Size); err != nil {
		return nil, err
	}
	if cfg.NumQueues < 2 {
		return nil, configErr(MQ, "NumQueues", "must be at least 2 for a multi-queue policy")
	}
	if cfg.BufferSize < 0 {
		return nil, configErr(MQ, "BufferSize", "must be non-negative")
	}
	if cfg.ExpireTime < 0 {
		return nil, configErr(MQ, "ExpireTime", "must be non-negative")
	}
	if cfg.QueueFunction == nil {
		return nil, configErr(MQ, "QueueFunction", "is required")
	}

	queues := make([]dlist.List, cfg.NumQueues)
	for i := range queues {
		queues[i] = dlist.New()
	}

	return &mqEngine{
		index:       make(map[Key]int),
		queues:      queues,
		histIndex:   make(map[Key]int),
		histList:    dlist.New(),
		capacity:    cfg.Size,
		numQueues:   cfg.NumQueues,
		historyCap:  cfg.BufferSize,
		expire:      int64(cfg.ExpireTime),
		accessBased: cfg.AccessBased,
		queueFunc:   cfg.QueueFunction,
	}, nil
}

func (e *mqEngine) Prev(h int) int { return e.entries[h].prev }
func (e *mqEngine) Next(h int) int { return e.entries[h].next }
func (e *mqEngine) SetPrev(h, p int) { e.entries[h].prev = p }
func (e *mqEngine) SetNext(h, n int) { e.entries[h].next = n }

type mqHistLinker struct{ e *mqEngine }

func (l mqHistLinker) Prev(h int) int { return l.e.hist[h].prev }
func (l mqHistLinker) Next(h int) int { return l.e.hist[h].next }
func (l mqHistLinker) SetPrev(h, p int) { l.e.hist[h].prev = p }
func (l mqHistLinker) SetNext(h, n int) { l.e.hist[h].next = n }

func (e *mqEngine) hl() mqHistLinker { return mqHistLinker{e} }

func (e *mqEngine) now() int64 {
	if e.accessBased {
		t := e.tick
		e.tick++
		return t
	}
	return wallClockNow()
}

func (e *mqEngine) clampQueue(freq uint64) int {
	idx := e.queueFunc(freq)
	if idx < 0 {
		return 0
	}
	if idx > e.numQueues-1 {
		return e.numQueues - 1
	}
	return idx
}

// ageQueues runs the bounded per-access demotion sweep: only queue
// heads are inspected, from the hottest queue down to Q1.
func (e *mqEngine) ageQueues(now int64) {
	for k := e.numQueues - 1; k >= 1; k-- {
		head := e.queues[k].Front()
		if head == dlist.Nil || e.entries[head].expiry >= now {
			continue
		}
		e.queues[k].Remove(e, head)
		e.entries[head].queueIdx = k - 1
		e.entries[head].expiry = now + e.expire
		e.queues[k-1].PushBack(e, head)
	}
}

func (e *mqEngine) allocEntry(key Key, value Value, freq uint64, queueIdx int, expiry int64) int {
	if n := len(e.free); n > 0 {
		h := e.free[n-1]
		e.free = e.free[:n-1]
		e.entries[h] = mqEntry{key: key, value: value, freq: freq, expiry: expiry, queueIdx: queueIdx, prev: dlist.Nil, next: dlist.Nil, alive: true}
		return h
	}
	e.entries = append(e.entries, mqEntry{key: key, value: value, freq: freq, expiry: expiry, queueIdx: queueIdx, prev: dlist.Nil, next: dlist.Nil, alive: true})
	return len(e.entries) - 1
}

func (e *mqEngine) dropEntry(h int) {
	delete(e.index, e.entries[h].key)
	e.entries[h].alive = false
	e.entries[h].value = nil
	e.free = append(e.free, h)
}

func (e *mqEngine) pushHistory(key Key, freq uint64) {
	if e.historyCap == 0 {
		return
	}
	var h int
	if n := len(e.freeHist); n > 0 {
		h = e.freeHist[n-1]
		e.freeHist = e.freeHist[:n-1]
		e.hist[h] = mqHistEntry{key: key, freq: freq, prev: dlist.Nil, next: dlist.Nil, alive: true}
	} else {
		e.hist = append(e.hist, mqHistEntry{key: key, freq: freq, prev: dlist.Nil, next: dlist.Nil, alive: true})
		h = len(e.hist) - 1
	}
	e.histIndex[key] = h
	e.histList.PushBack(e.hl(), h)

	if e.histList.Len() > e.historyCap {
		oldest := e.histList.Front()
		e.histList.Remove(e.hl(), oldest)
		delete(e.histIndex, e.hist[oldest].key)
		e.hist[oldest].alive = false
		e.freeHist = append(e.freeHist, oldest)
	}
}

func (e *mqEngine) totalEntries() int { return len(e.index) }

func (e *mqEngine) Get(key Key, sentinel Value) Value {
	now := e.now()
	e.ageQueues(now)

	h, ok := e.index[key]
	if !ok {
		e.misses++
		return sentinel
	}
	e.hits++

	ent := &e.entries[h]
	ent.freq++
	target := e.clampQueue(ent.freq)
	ent.expiry = now + e.expire

	if target > ent.queueIdx {
		e.queues[ent.queueIdx].Remove(e, h)
		ent.queueIdx = target
		e.queues[target].PushBack(e, h)
	} else {
		e.queues[ent.queueIdx].MoveToBack(e, h)
	}
	return ent.value
}

func (e *mqEngine) Put(key Key, value Value) {
	now := e.now()
	e.ageQueues(now)

	if h, ok := e.index[key]; ok {
		e.queues[e.entries[h].queueIdx].Remove(e, h)
		e.dropEntry(h)
	}

	var freq uint64 = 1
	if hh, ok := e.histIndex[key]; ok {
		freq = e.hist[hh].freq + 1
		e.histList.Remove(e.hl(), hh)
		delete(e.histIndex, key)
		e.hist[hh].alive = false
		e.freeHist = append(e.freeHist, hh)
	}

	queueIdx := e.clampQueue(freq)
	if freq == 1 {
		queueIdx = 0
	}
	h := e.allocEntry(key, value, freq, queueIdx, now+e.expire)
	e.index[key] = h
	e.queues[queueIdx].PushBack(e, h)

	if e.totalEntries() > e.capacity {
		for k := 0; k < e.numQueues; k++ {
			if victim := e.queues[k].Front(); victim != dlist.Nil {
				e.queues[k].Remove(e, victim)
				vKey, vFreq := e.entries[victim].key, e.entries[victim].freq
				e.dropEntry(victim)
				e.pushHistory(vKey, vFreq)
				break
			}
		}
	}
}

func (e *mqEngine) Clear() {
	e.entries = e.entries[:0]
	e.free = e.free[:0]
	e.index = make(map[Key]int)
	for i := range e.queues {
		e.queues[i] = dlist.New()
	}
	e.hist = e.hist[:0]
	e.freeHist = e.freeHist[:0]
	e.histIndex = make(map[Key]int)
	e.histList = dlist.New()
	e.tick = 0
	e.hits, e.misses = 0, 0
}

func (e *mqEngine) Stats() Stats {
	return Stats{
		Hits:        e.hits,
		Misses:      e.misses,
		CurrentSize: uint64(len(e.index)),
		MaxSize:     uint64(e.capacity),
	}
}

// DynamicMethods advertises QueueDepths for facades that want to expose
// per-queue occupancy (e.g. a cache_queue_depths() binding).
func (e *mqEngine) DynamicMethods() []string { return []string{"QueueDepths"} }

// QueueDepths returns the current occupancy of Q0..Q_{N-1}, in order.
func (e *mqEngine) QueueDepths() []int {
	depths := make([]int, e.numQueues)
	for i, q := range e.queues {
		depths[i] = q.Len()
	}
	return depths
}
