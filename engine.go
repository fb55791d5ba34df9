package cachekit

import "fmt"

// Policy names one of the fourteen supported eviction strategies.
type Policy int

const (
	FIFO Policy = iota
	LIFO
	LRU
	MRU
	NMRU
	RR
	Static
	LFU
	MFU
	SLRU
	TwoQ
	TwoQFull
	MQ
	TLRU
)

func (p Policy) String() string {
	switch p {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	case LRU:
		return "lru"
	case MRU:
		return "mru"
	case NMRU:
		return "nmru"
	case RR:
		return "rr"
	case Static:
		return "static"
	case LFU:
		return "lfu"
	case MFU:
		return "mfu"
	case SLRU:
		return "slru"
	case TwoQ:
		return "2q"
	case TwoQFull:
		return "2q-full"
	case MQ:
		return "mq"
	case TLRU:
		return "tlru"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// QueueFunc maps an entry's access frequency to an MQ queue index. It
// must be monotone non-decreasing; the engine does not verify this.
type QueueFunc func(frequency uint64) int

// Config carries every construction parameter across the fourteen
// policies. Only the fields relevant to the chosen Policy are read; New
// validates exactly those and ignores the rest, so zero-valuing unused
// fields is always safe.
type Config struct {
	// Size is the primary capacity, used by FIFO, LIFO, LRU, MRU, NMRU,
	// RR, LFU, MFU, TLRU, and as MQ's total capacity. Ignored by Static
	// (which accepts any Put) and by SLRU, TwoQ and TwoQFull, which use
	// their own sub-fields.
	Size int

	// SLRU
	ProtectedSize    int
	ProbationarySize int

	// TwoQ (simple)
	PrimarySize   int
	SecondarySize int

	// TwoQFull
	SecondaryInSize  int
	SecondaryOutSize int

	// MQ
	NumQueues     int
	BufferSize    int
	ExpireTime    ExpireTime
	AccessBased   bool
	QueueFunction QueueFunc

	// TLRU
	ExpireInterval ExpireTime
	ResetOnAccess  bool

	// RandomSource overrides the default seeded source used by RR and
	// NMRU for victim selection. Nil uses a process-default seed.
	RandomSource RandomSource
}

// ExpireTime is a duration expressed in the engine's own time unit: wall
// clock nanoseconds when AccessBased is false... no — see tlru.go/mq.go:
// it is always interpreted consistently with the policy's AccessBased
// flag (access ticks when true, time.Duration nanoseconds when false).
type ExpireTime int64

// RandomSource is re-exported from internal/randsrc so callers assembling
// a Config don't need to import the internal package.
type RandomSource interface {
	Intn(n int) int
}

// Engine is the capability set every policy realizes: get, put, clear,
// stats, and optional auxiliary operations. Key canonicalization is the
// package-level CreateKey, not an Engine method.
type Engine interface {
	// Get returns the value stored under key, or sentinel if absent (or
	// expired/ghost, for policies with time- or ghost-aware semantics).
	// May mutate ordering structures; never inserts.
	Get(key Key, sentinel Value) Value

	// Put inserts or replaces the value stored under key, evicting a
	// victim per policy if capacity would otherwise be exceeded.
	Put(key Key, value Value)

	// Clear drops all entries and zeroes Hits, Misses, CurrentSize.
	Clear()

	// Stats returns the current counters.
	Stats() Stats

	// DynamicMethods advertises auxiliary operation names the
	// surrounding facade should expose under a cache_ prefix. Most
	// engines return nil.
	DynamicMethods() []string
}

// New constructs the engine for the given policy. Configuration errors
// are reported as a *ConfigError wrapping ErrInvalidConfiguration.
func New(policy Policy, cfg Config) (Engine, error) {
	switch policy {
	case FIFO:
		return newFIFO(cfg)
	case LIFO:
		return newLIFO(cfg)
	case LRU:
		return newLRUEngine(cfg)
	case MRU:
		return newMRU(cfg)
	case NMRU:
		return newNMRU(cfg)
	case RR:
		return newRR(cfg)
	case Static:
		return newStatic(cfg)
	case LFU:
		return newLFU(cfg, false)
	case MFU:
		return newLFU(cfg, true)
	case SLRU:
		return newSLRU(cfg)
	case TwoQ:
		return newTwoQ(cfg)
	case TwoQFull:
		return newTwoQFull(cfg)
	case MQ:
		return newMQ(cfg)
	case TLRU:
		return newTLRU(cfg)
	default:
		return nil, &ConfigError{Policy: policy, Field: "policy", Reason: "unknown policy"}
	}
}

func requirePositive(policy Policy, field string, v int) error {
	if v <= 0 {
		return configErr(policy, field, "must be a positive integer")
	}
	return nil
}
