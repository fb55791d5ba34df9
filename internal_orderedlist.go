package cachekit

import "github.com/Krishna8167/cachekit/internal/dlist"

// orderedList backs FIFO, LIFO, LRU, and MRU: all four share one index
// plus one doubly linked ordering list, and differ only in whether Get
// reorders the accessed entry and which end of the list is evicted.
//
//	reorderOnGet=false, evictFront=true   -> FIFO
//	reorderOnGet=false, evictFront=false  -> LIFO
//	reorderOnGet=true,  evictFront=true   -> LRU
//	reorderOnGet=true,  evictFront=false  -> MRU (evicts the pre-insert
//	                                         tail, i.e. the current MRU,
//	                                         before linking the new entry)
type orderedList struct {
	entries []olEntry
	free    []int
	index   map[Key]int
	list    dlist.List

	maxSize      int
	hits, misses uint64

	reorderOnGet bool
	evictFront   bool
}

type olEntry struct {
	key        Key
	value      Value
	prev, next int
	alive      bool
}

func newOrderedList(maxSize int, reorderOnGet, evictFront bool) *orderedList {
	return &orderedList{
		index:        make(map[Key]int),
		list:         dlist.New(),
		maxSize:      maxSize,
		reorderOnGet: reorderOnGet,
		evictFront:   evictFront,
	}
}

// Linker implementation, operating over the entries arena.
func (o *orderedList) Prev(h int) int { return o.entries[h].prev }
func (o *orderedList) Next(h int) int { return o.entries[h].next }
func (o *orderedList) SetPrev(h, prev int) { o.entries[h].prev = prev }
func (o *orderedList) SetNext(h, next int) { o.entries[h].next = next }

func (o *orderedList) alloc(key Key, value Value) int {
	if n := len(o.free); n > 0 {
		h := o.free[n-1]
		o.free = o.free[:n-1]
		o.entries[h] = olEntry{key: key, value: value, prev: dlist.Nil, next: dlist.Nil, alive: true}
		return h
	}
	o.entries = append(o.entries, olEntry{key: key, value: value, prev: dlist.Nil, next: dlist.Nil, alive: true})
	return len(o.entries) - 1
}

func (o *orderedList) evict(h int) {
	o.list.Remove(o, h)
	delete(o.index, o.entries[h].key)
	o.entries[h].alive = false
	o.entries[h].value = nil
	o.free = append(o.free, h)
}

func (o *orderedList) get(key Key, sentinel Value) Value {
	h, ok := o.index[key]
	if !ok {
		o.misses++
		return sentinel
	}
	if o.reorderOnGet {
		o.list.MoveToBack(o, h)
	}
	o.hits++
	return o.entries[h].value
}

func (o *orderedList) put(key Key, value Value) {
	if h, ok := o.index[key]; ok {
		o.entries[h].value = value
		o.list.MoveToBack(o, h)
		return
	}

	if len(o.index) >= o.maxSize {
		var victim int
		if o.evictFront {
			victim = o.list.Front()
		} else {
			victim = o.list.Back()
		}
		if victim != dlist.Nil {
			o.evict(victim)
		}
	}

	h := o.alloc(key, value)
	o.index[key] = h
	o.list.PushBack(o, h)
}

func (o *orderedList) clear() {
	o.entries = o.entries[:0]
	o.free = o.free[:0]
	o.index = make(map[Key]int)
	o.list = dlist.New()
	o.hits, o.misses = 0, 0
}

func (o *orderedList) stats() Stats {
	return Stats{
		Hits:        o.hits,
		Misses:      o.misses,
		CurrentSize: uint64(len(o.index)),
		MaxSize:     uint64(o.maxSize),
	}
}
