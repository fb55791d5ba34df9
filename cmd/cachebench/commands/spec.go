// Package commands implements the cachebench CLI subcommands.
package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/Krishna8167/cachekit"
	"github.com/Krishna8167/cachekit/internal/randsrc"
	"github.com/Krishna8167/cachekit/internal/runtimecfg"
)

// buildEngine translates one runtimecfg.CacheConfig into the matching
// cachekit.Policy and Config, then constructs the engine.
func buildEngine(c runtimecfg.CacheConfig) (cachekit.Engine, cachekit.Policy, error) {
	policy, err := parsePolicy(c.Policy)
	if err != nil {
		return nil, 0, err
	}

	// Access-based engines count expiry in ticks; wall-clock engines in
	// nanoseconds, so milliseconds are converted only for the latter.
	expire := cachekit.ExpireTime(c.ExpireTimeMillis)
	if !c.AccessBased {
		expire = cachekit.ExpireTime(time.Duration(c.ExpireTimeMillis) * time.Millisecond)
	}

	cfg := cachekit.Config{
		Size:             c.Size,
		ProtectedSize:    c.ProtectedSize,
		ProbationarySize: c.ProbationarySize,
		PrimarySize:      c.PrimarySize,
		SecondarySize:    c.SecondarySize,
		SecondaryInSize:  c.SecondaryInSize,
		SecondaryOutSize: c.SecondaryOutSize,
		NumQueues:        c.NumQueues,
		BufferSize:       c.BufferSize,
		ExpireTime:       expire,
		ExpireInterval:   expire,
		AccessBased:      c.AccessBased,
		ResetOnAccess:    c.ResetOnAccess,
	}
	if policy == cachekit.MQ {
		cfg.QueueFunction = defaultQueueFunc
	}
	if c.Seed != 0 {
		cfg.RandomSource = randsrc.Default(c.Seed)
	}

	eng, err := cachekit.New(policy, cfg)
	if err != nil {
		return nil, 0, err
	}
	return eng, policy, nil
}

// defaultQueueFunc maps an access frequency to an MQ queue index using
// log2(frequency), the textbook MQ promotion function.
func defaultQueueFunc(frequency uint64) int {
	idx := 0
	for f := frequency; f > 1; f >>= 1 {
		idx++
	}
	return idx
}

func parsePolicy(name string) (cachekit.Policy, error) {
	switch strings.ToLower(name) {
	case "fifo":
		return cachekit.FIFO, nil
	case "lifo":
		return cachekit.LIFO, nil
	case "lru":
		return cachekit.LRU, nil
	case "mru":
		return cachekit.MRU, nil
	case "nmru":
		return cachekit.NMRU, nil
	case "rr":
		return cachekit.RR, nil
	case "static":
		return cachekit.Static, nil
	case "lfu":
		return cachekit.LFU, nil
	case "mfu":
		return cachekit.MFU, nil
	case "slru":
		return cachekit.SLRU, nil
	case "2q":
		return cachekit.TwoQ, nil
	case "2q-full":
		return cachekit.TwoQFull, nil
	case "mq":
		return cachekit.MQ, nil
	case "tlru":
		return cachekit.TLRU, nil
	default:
		return 0, fmt.Errorf("unrecognized policy %q", name)
	}
}

var allPolicies = []cachekit.Policy{
	cachekit.FIFO, cachekit.LIFO, cachekit.LRU, cachekit.MRU, cachekit.NMRU,
	cachekit.RR, cachekit.Static, cachekit.LFU, cachekit.MFU, cachekit.SLRU,
	cachekit.TwoQ, cachekit.TwoQFull, cachekit.MQ, cachekit.TLRU,
}
