package cachekit

import "math"

/*
Stats represents the runtime counters every engine exposes identically.

PURPOSE

Tracks the operational indicators common to all fourteen policies:

- Hits        → Get calls that found a live entry.
- Misses      → Get calls that found nothing (or a ghost/expired entry).
- CurrentSize → Live entries reachable through the Index right now.
- MaxSize     → Configured capacity; a composite (sum of sub-capacity
                fields) for segmented policies such as SLRU, 2Q and
                2Q-Full. MQ reports its total Size.

UNBOUNDED

Static never evicts, so it has no finite MaxSize. Rather than overload
zero (a legitimate, if degenerate, bound for every other policy) this
package exposes the Unbounded sentinel for that case.

hit_ratio = Hits / (Hits + Misses)
*/

// Value is the opaque payload an engine stores. The core never compares
// or inspects it.
type Value = any

// Unbounded marks a Stats.MaxSize with no finite limit (Static only).
const Unbounded uint64 = math.MaxUint64

// Stats holds the per-engine counters every policy exposes identically.
type Stats struct {
	Hits        uint64
	Misses      uint64
	CurrentSize uint64
	MaxSize     uint64
}

// HitRate returns Hits / (Hits + Misses), or 0 if there have been no
// lookups yet.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
