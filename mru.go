package cachekit

// mruEngine implements Most-Recently-Used eviction: the same recency
// list as LRU, but the victim on overflow is the current MRU (the list
// tail) rather than the least recently used entry. Eviction happens
// before the new entry is linked, which is equivalent to evicting the
// predecessor of where the new tail will be.
type mruEngine struct {
	*orderedList
}

func newMRU(cfg Config) (Engine, error) {
	if err := requirePositive(MRU, "Size", cfg.Size); err != nil {
		return nil, err
	}
	return &mruEngine{orderedList: newOrderedList(cfg.Size, true, false)}, nil
}

func (e *mruEngine) Get(key Key, sentinel Value) Value { return e.get(key, sentinel) }
func (e *mruEngine) Put(key Key, value Value) { e.put(key, value) }
func (e *mruEngine) Clear() { e.clear() }
func (e *mruEngine) Stats() Stats { return e.stats() }
func (e *mruEngine) DynamicMethods() []string { return nil }
