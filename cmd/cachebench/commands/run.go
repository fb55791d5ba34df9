package commands

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Krishna8167/cachekit"
	"github.com/Krishna8167/cachekit/internal/obslog"
	"github.com/Krishna8167/cachekit/internal/obsmetrics"
	"github.com/Krishna8167/cachekit/internal/runtimecfg"
)

// sampleInterval is how often a running cache's stats are pushed into
// the metrics gauges while the workload runs.
const sampleInterval = 2 * time.Second

// NewRunCommand builds the "run" subcommand: load a cachebench config,
// stand up every configured cache, and replay a synthetic workload
// against each until --duration elapses or the process is interrupted.
func NewRunCommand() *cobra.Command {
	var duration time.Duration
	var keyspace int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a config and replay a workload against its caches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := runtimecfg.Load(configPath)
			if err != nil {
				return err
			}

			logger := obslog.New(cfg.Logging.Level, cfg.Logging.Format)

			type instance struct {
				name   string
				policy cachekit.Policy
				engine cachekit.Engine
			}
			instances := make([]instance, 0, len(cfg.Caches))
			for _, c := range cfg.Caches {
				eng, policy, buildErr := buildEngine(c)
				if buildErr != nil {
					return fmt.Errorf("cache %q: %w", c.Name, buildErr)
				}
				instances = append(instances, instance{name: c.Name, policy: policy, engine: eng})
				logger.Info().Str("cache", c.Name).Str("policy", policy.String()).Msg("engine constructed")
			}

			var metrics *obsmetrics.Metrics
			if cfg.Metrics.Enabled {
				metrics = obsmetrics.New()
				server := &http.Server{Addr: cfg.Metrics.Listen, Handler: metrics.Handler(), ReadHeaderTimeout: 5 * time.Second}
				go func() {
					if serveErr := server.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
						logger.Error().Err(serveErr).Msg("metrics server stopped")
					}
				}()
				logger.Info().Str("listen", cfg.Metrics.Listen).Msg("metrics endpoint started")
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if duration > 0 {
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				cancel()
			}()

			ticker := time.NewTicker(sampleInterval)
			defer ticker.Stop()
			rng := rand.New(rand.NewSource(1))

			for {
				select {
				case <-ctx.Done():
					for _, inst := range instances {
						logger.Info().Str("cache", inst.name).
							Uint64("hits", inst.engine.Stats().Hits).
							Uint64("misses", inst.engine.Stats().Misses).
							Float64("hit_rate", inst.engine.Stats().HitRate()).
							Msg("final stats")
					}
					return nil
				case <-ticker.C:
					for _, inst := range instances {
						if metrics != nil {
							metrics.Observe(inst.name, inst.policy.String(), inst.engine.Stats())
						}
						logger.Debug().Str("cache", inst.name).
							Float64("hit_rate", inst.engine.Stats().HitRate()).Msg("sample")
					}
				default:
					for _, inst := range instances {
						driveOne(inst.engine, rng, keyspace)
					}
				}
			}
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 30*time.Second, "how long to run the workload (0 = until interrupted)")
	cmd.Flags().IntVar(&keyspace, "keyspace", 10000, "distinct integer keys the synthetic workload draws from")
	return cmd
}

// driveOne issues a single Get-then-Put for a uniformly drawn key
// against one engine: a
// miss is immediately followed by a Put so the workload converges to a
// steady working set instead of growing unbounded.
func driveOne(eng cachekit.Engine, rng *rand.Rand, keyspace int) {
	n := rng.Intn(keyspace)
	key, err := cachekit.CreateKey([]cachekit.Value{n}, nil, false)
	if err != nil {
		return
	}
	if v := eng.Get(key, nil); v == nil {
		eng.Put(key, n)
	}
}
