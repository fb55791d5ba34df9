package cachekit

/*
lruEngine implements Least-Recently-Used eviction.

STRUCTURE

A single doubly linked list orders entries by recency of access, backed
by a map[Key]int index into an arena of entries — the same hash-map +
intrusive-list pairing the teacher cache used for its TTL+LRU store,
generalized here to the shared orderedList so FIFO/LIFO/MRU reuse the
identical arena and splicing code.

ALGORITHM

- Get hit: unlink the entry and relink it at the tail (MRU end).
- Put: insert at the tail.
- Overflow: evict the head (the least recently used entry).

Both operations are O(1): container/list-style splicing needs no
traversal, whether the backing store is pointer nodes or, as here,
arena handles.
*/
type lruEngine struct {
	*orderedList
}

func newLRUEngine(cfg Config) (Engine, error) {
	if err := requirePositive(LRU, "Size", cfg.Size); err != nil {
		return nil, err
	}
	return &lruEngine{orderedList: newOrderedList(cfg.Size, true, true)}, nil
}

func (e *lruEngine) Get(key Key, sentinel Value) Value { return e.get(key, sentinel) }
func (e *lruEngine) Put(key Key, value Value) { e.put(key, value) }
func (e *lruEngine) Clear() { e.clear() }
func (e *lruEngine) Stats() Stats { return e.stats() }
func (e *lruEngine) DynamicMethods() []string { return nil }
