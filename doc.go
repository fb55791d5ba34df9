/*
Package cachekit is the cache-replacement core for a function-memoization
layer. It is deliberately narrow: given a Key and a Value, each Engine
decides what to keep and what to evict under a fixed capacity, using one
of fourteen well-known policies (FIFO, LIFO, LRU, MRU, NMRU, RR, Static,
LFU, MFU, SLRU, 2Q, 2Q-Full, MQ, TLRU).

Everything upstream of that decision — turning a plain function into a
caching one, canonicalizing its arguments beyond what CreateKey already
does, dispatching expiration or eviction callbacks to user code — belongs
to a decoration facade built on top of this package, not inside it. That
separation keeps the core testable in isolation and keeps its Engine
interface the same five methods regardless of which policy backs it.

A typical caller selects a Policy, builds a Config naming that policy's
knobs, and calls New:

	eng, err := cachekit.New(cachekit.LRU, cachekit.Config{Size: 1024})
	if err != nil {
		// Size <= 0, or a policy-specific field out of range
	}
	key, _ := cachekit.CreateKey([]cachekit.Value{userID}, nil, false)
	if v := eng.Get(key, nil); v != nil {
		return v
	}
	result := computeExpensiveThing(userID)
	eng.Put(key, result)

cmd/cachebench exercises every policy against synthetic and configured
workloads; see its own documentation for the CLI surface.
*/
package cachekit
