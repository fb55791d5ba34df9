package cachekit

import "github.com/Krishna8167/cachekit/internal/dlist"

/*
lfuEngine implements the O(1) frequency-list scheme shared by LFU and
MFU (highFreqVictim selects which end of the frequency chain is the
eviction victim; the tie-break discipline — oldest arrival at that
frequency — is identical for both, per spec: MFU's tie-break is not
separately specified in the source, so this implementation mirrors
LFU's for symmetry).

STRUCTURE

Two intrusive doubly linked lists, both arena-backed:

  - A chain of frequency nodes in ascending frequency order. Only
    adjacent frequencies are ever linked, so promoting an entry from
    frequency f to f+1 is a constant-time check-and-splice — no
    frequency -> node hash map is needed.
  - Each frequency node owns its own entries list (oldest arrival at
    the head), reusing the same entry arena's sibling fields since an
    entry belongs to exactly one frequency node at a time.

Each entry also records a back-reference to its current frequency node,
so a hit can detach it without scanning.
*/
type lfuEngine struct {
	entries []lfuEntry
	freeEnt []int
	index   map[Key]int
	maxSize int

	nodes     []freqNode
	freeNodes []int
	chain     dlist.List

	highFreqVictim bool
	hits, misses   uint64
}

type lfuEntry struct {
	key        Key
	value      Value
	freqNode   int
	prev, next int
	alive      bool
}

type freqNode struct {
	freq       uint64
	prev, next int
	entries    dlist.List
	alive      bool
}

func newLFU(cfg Config, highFreqVictim bool) (Engine, error) {
	policy := LFU
	if highFreqVictim {
		policy = MFU
	}
	if err := requirePositive(policy, "Size", cfg.Size); err != nil {
		return nil, err
	}
	return &lfuEngine{
		index:          make(map[Key]int),
		maxSize:        cfg.Size,
		chain:          dlist.New(),
		highFreqVictim: highFreqVictim,
	}, nil
}

// entry-arena Linker (intra-bucket lists).
func (e *lfuEngine) Prev(h int) int { return e.entries[h].prev }
func (e *lfuEngine) Next(h int) int { return e.entries[h].next }
func (e *lfuEngine) SetPrev(h, p int) { e.entries[h].prev = p }
func (e *lfuEngine) SetNext(h, n int) { e.entries[h].next = n }

// frequency-chain Linker, wrapping the same engine with a distinct
// method set via a thin adapter type so dlist.List can address both
// the entry arena and the node arena independently.
type freqChainLinker struct{ e *lfuEngine }

func (f freqChainLinker) Prev(h int) int { return f.e.nodes[h].prev }
func (f freqChainLinker) Next(h int) int { return f.e.nodes[h].next }
func (f freqChainLinker) SetPrev(h, p int) { f.e.nodes[h].prev = p }
func (f freqChainLinker) SetNext(h, n int) { f.e.nodes[h].next = n }

func (e *lfuEngine) chainLinker() freqChainLinker { return freqChainLinker{e} }

func (e *lfuEngine) allocEntry(key Key, value Value, node int) int {
	if n := len(e.freeEnt); n > 0 {
		h := e.freeEnt[n-1]
		e.freeEnt = e.freeEnt[:n-1]
		e.entries[h] = lfuEntry{key: key, value: value, freqNode: node, prev: dlist.Nil, next: dlist.Nil, alive: true}
		return h
	}
	e.entries = append(e.entries, lfuEntry{key: key, value: value, freqNode: node, prev: dlist.Nil, next: dlist.Nil, alive: true})
	return len(e.entries) - 1
}

func (e *lfuEngine) allocNode(freq uint64) int {
	if n := len(e.freeNodes); n > 0 {
		h := e.freeNodes[n-1]
		e.freeNodes = e.freeNodes[:n-1]
		e.nodes[h] = freqNode{freq: freq, prev: dlist.Nil, next: dlist.Nil, entries: dlist.New(), alive: true}
		return h
	}
	e.nodes = append(e.nodes, freqNode{freq: freq, prev: dlist.Nil, next: dlist.Nil, entries: dlist.New(), alive: true})
	return len(e.nodes) - 1
}

func (e *lfuEngine) freeNode(h int) {
	e.chain.Remove(e.chainLinker(), h)
	e.nodes[h].alive = false
	e.freeNodes = append(e.freeNodes, h)
}

// nodeAfter finds or creates the frequency node adjacent to cur (cur's
// successor in the chain) holding exactly freq. cur may be dlist.Nil to
// mean "insert at the very front" (used for the frequency-1 node).
func (e *lfuEngine) nodeAfter(cur int, freq uint64) int {
	var succ int
	if cur == dlist.Nil {
		succ = e.chain.Front()
	} else {
		succ = e.nodes[cur].next
	}
	if succ != dlist.Nil && e.nodes[succ].freq == freq {
		return succ
	}
	node := e.allocNode(freq)
	e.chain.InsertAfter(e.chainLinker(), cur, node)
	return node
}

func (e *lfuEngine) detachFromNode(h int) {
	ent := &e.entries[h]
	node := ent.freqNode
	e.nodes[node].entries.Remove(e, h)
	if e.nodes[node].entries.Len() == 0 {
		e.freeNode(node)
	}
}

func (e *lfuEngine) Get(key Key, sentinel Value) Value {
	h, ok := e.index[key]
	if !ok {
		e.misses++
		return sentinel
	}
	e.hits++

	ent := &e.entries[h]
	curNode := ent.freqNode
	newFreq := e.nodes[curNode].freq + 1

	e.nodes[curNode].entries.Remove(e, h)
	next := e.nodeAfter(curNode, newFreq)
	if e.nodes[curNode].entries.Len() == 0 {
		e.freeNode(curNode)
	}

	ent.freqNode = next
	e.nodes[next].entries.PushBack(e, h)
	return ent.value
}

func (e *lfuEngine) Put(key Key, value Value) {
	if h, ok := e.index[key]; ok {
		e.detachFromNode(h)
		node := e.nodeAfter(dlist.Nil, 1)
		e.entries[h].value = value
		e.entries[h].freqNode = node
		e.nodes[node].entries.PushBack(e, h)
		return
	}

	if len(e.index) >= e.maxSize {
		e.evictOne()
	}

	node := e.nodeAfter(dlist.Nil, 1)
	h := e.allocEntry(key, value, node)
	e.index[key] = h
	e.nodes[node].entries.PushBack(e, h)
}

func (e *lfuEngine) evictOne() {
	var node int
	if e.highFreqVictim {
		node = e.chain.Back()
	} else {
		node = e.chain.Front()
	}
	if node == dlist.Nil {
		return
	}
	victim := e.nodes[node].entries.Front()
	if victim == dlist.Nil {
		return
	}

	key := e.entries[victim].key
	e.detachFromNode(victim)
	delete(e.index, key)
	e.entries[victim].alive = false
	e.entries[victim].value = nil
	e.freeEnt = append(e.freeEnt, victim)
}

func (e *lfuEngine) Clear() {
	e.entries = e.entries[:0]
	e.freeEnt = e.freeEnt[:0]
	e.index = make(map[Key]int)
	e.nodes = e.nodes[:0]
	e.freeNodes = e.freeNodes[:0]
	e.chain = dlist.New()
	e.hits, e.misses = 0, 0
}

func (e *lfuEngine) Stats() Stats {
	return Stats{Hits: e.hits, Misses: e.misses, CurrentSize: uint64(len(e.index)), MaxSize: uint64(e.maxSize)}
}

func (e *lfuEngine) DynamicMethods() []string { return nil }
