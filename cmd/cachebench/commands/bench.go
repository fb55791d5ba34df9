package commands

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/Krishna8167/cachekit"
	"github.com/Krishna8167/cachekit/internal/runtimecfg"
)

// NewBenchCommand builds the "bench" subcommand: a single-policy,
// fixed-operation-count throughput and hit-rate measurement, independent
// of any config file.
func NewBenchCommand() *cobra.Command {
	var policyName string
	var size int
	var keyspace int
	var ops int
	var seed int64

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a fixed-size synthetic benchmark against one policy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, policy, err := buildEngine(runtimecfg.CacheConfig{
				Name: "bench", Policy: policyName,
				Size: size, ProtectedSize: size / 2, ProbationarySize: size - size/2,
				PrimarySize: size / 2, SecondarySize: size - size/2,
				SecondaryInSize: size / 2, SecondaryOutSize: size / 2,
				NumQueues: 4, BufferSize: size, ExpireTimeMillis: 0, AccessBased: true,
				Seed: seed,
			})
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(seed))
			start := time.Now()
			for i := 0; i < ops; i++ {
				n := rng.Intn(keyspace)
				key, keyErr := cachekit.CreateKey([]cachekit.Value{n}, nil, false)
				if keyErr != nil {
					return keyErr
				}
				if v := eng.Get(key, nil); v == nil {
					eng.Put(key, n)
				}
			}
			elapsed := time.Since(start)

			stats := eng.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "policy:     %s\n", policy.String())
			fmt.Fprintf(out, "operations: %d\n", ops)
			fmt.Fprintf(out, "elapsed:    %s\n", elapsed)
			fmt.Fprintf(out, "throughput: %.0f ops/sec\n", float64(ops)/elapsed.Seconds())
			fmt.Fprintf(out, "hits:       %d\n", stats.Hits)
			fmt.Fprintf(out, "misses:     %d\n", stats.Misses)
			fmt.Fprintf(out, "hit rate:   %.4f\n", stats.HitRate())
			return nil
		},
	}

	cmd.Flags().StringVar(&policyName, "policy", "lru", "eviction policy to benchmark")
	cmd.Flags().IntVar(&size, "size", 1024, "cache capacity")
	cmd.Flags().IntVar(&keyspace, "keyspace", 4096, "distinct integer keys the workload draws from")
	cmd.Flags().IntVar(&ops, "ops", 1_000_000, "number of Get/Put operations to issue")
	cmd.Flags().Int64Var(&seed, "seed", 1, "workload and random-eviction RNG seed")
	return cmd
}
