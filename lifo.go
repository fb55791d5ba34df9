package cachekit

// lifoEngine evicts the most recent insertion first. Get never reorders
// the list; a replaced key is unlinked and re-linked at the tail,
// treated as a fresh insertion.
type lifoEngine struct {
	*orderedList
}

func newLIFO(cfg Config) (Engine, error) {
	if err := requirePositive(LIFO, "Size", cfg.Size); err != nil {
		return nil, err
	}
	return &lifoEngine{orderedList: newOrderedList(cfg.Size, false, false)}, nil
}

func (e *lifoEngine) Get(key Key, sentinel Value) Value { return e.get(key, sentinel) }
func (e *lifoEngine) Put(key Key, value Value) { e.put(key, value) }
func (e *lifoEngine) Clear() { e.clear() }
func (e *lifoEngine) Stats() Stats { return e.stats() }
func (e *lifoEngine) DynamicMethods() []string { return nil }
