package cachekit

// fifoEngine evicts the oldest insertion first. Get never reorders the
// list; a replaced key is unlinked and re-linked at the tail, treated as
// a fresh insertion.
type fifoEngine struct {
	*orderedList
}

func newFIFO(cfg Config) (Engine, error) {
	if err := requirePositive(FIFO, "Size", cfg.Size); err != nil {
		return nil, err
	}
	return &fifoEngine{orderedList: newOrderedList(cfg.Size, false, true)}, nil
}

func (e *fifoEngine) Get(key Key, sentinel Value) Value { return e.get(key, sentinel) }
func (e *fifoEngine) Put(key Key, value Value) { e.put(key, value) }
func (e *fifoEngine) Clear() { e.clear() }
func (e *fifoEngine) Stats() Stats { return e.stats() }
func (e *fifoEngine) DynamicMethods() []string { return nil }
