// Package runtimecfg loads the configuration for the cachebench CLI:
// which cache instances to stand up, at what policy and size, and how
// to expose logging and metrics while the workload runs.
package runtimecfg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrNoCaches        = errors.New("at least one cache must be configured")
	ErrInvalidPolicy   = errors.New("unrecognized policy name")
	ErrInvalidSize     = errors.New("cache size must be positive")
	ErrInvalidMetrics  = errors.New("metrics listen address required when metrics are enabled")
)

// Default configuration values.
const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMetricsListen = ":9090"
	defaultNumQueues     = 4
)

// Config is the root of the cachebench runtime configuration.
type Config struct {
	Caches  []CacheConfig `mapstructure:"caches"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// CacheConfig describes one engine instance to construct.
type CacheConfig struct {
	Name   string `mapstructure:"name"`
	Policy string `mapstructure:"policy"`

	Size             int  `mapstructure:"size"`
	ProtectedSize    int  `mapstructure:"protected_size"`
	ProbationarySize int  `mapstructure:"probationary_size"`
	PrimarySize      int  `mapstructure:"primary_size"`
	SecondarySize    int  `mapstructure:"secondary_size"`
	SecondaryInSize  int  `mapstructure:"secondary_in_size"`
	SecondaryOutSize int  `mapstructure:"secondary_out_size"`
	NumQueues        int  `mapstructure:"num_queues"`
	BufferSize       int  `mapstructure:"buffer_size"`
	ExpireTimeMillis int64 `mapstructure:"expire_time_millis"`
	AccessBased      bool `mapstructure:"access_based"`
	ResetOnAccess    bool `mapstructure:"reset_on_access"`
	Seed             int64 `mapstructure:"seed"`
}

// LoggingConfig configures the zerolog writer used by the CLI.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig configures the Prometheus exposition endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Listen  string `mapstructure:"listen"`
}

// Load reads configuration from configPath (if non-empty), falling back
// to ./cachebench.yaml / ./config/cachebench.yaml, then layers
// CACHEBENCH_-prefixed environment variables on top.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("cachebench")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("CACHEBENCH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", defaultLogLevel)
	v.SetDefault("logging.format", defaultLogFormat)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.listen", defaultMetricsListen)
	v.SetDefault("caches", []map[string]any{
		{"name": "default", "policy": "lru", "size": 1024},
	})
	v.SetDefault("num_queues", defaultNumQueues)
}

func validate(cfg *Config) error {
	if len(cfg.Caches) == 0 {
		return ErrNoCaches
	}
	for _, c := range cfg.Caches {
		if _, ok := policyNames[strings.ToLower(c.Policy)]; !ok {
			return fmt.Errorf("%w: %q (cache %q)", ErrInvalidPolicy, c.Policy, c.Name)
		}
		if _, usesSize := sizedPolicies[strings.ToLower(c.Policy)]; usesSize && c.Size <= 0 {
			return fmt.Errorf("%w: cache %q", ErrInvalidSize, c.Name)
		}
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Listen == "" {
		return ErrInvalidMetrics
	}
	return nil
}

var policyNames = map[string]struct{}{
	"fifo": {}, "lifo": {}, "lru": {}, "mru": {}, "nmru": {}, "rr": {},
	"static": {}, "lfu": {}, "mfu": {}, "slru": {}, "2q": {}, "2q-full": {},
	"mq": {}, "tlru": {},
}

// sizedPolicies are the ones reading Config.Size directly, as opposed to
// the compound policies (slru, 2q, 2q-full) that size themselves
// through their own sub-fields, and static, which accepts any Put.
var sizedPolicies = map[string]struct{}{
	"fifo": {}, "lifo": {}, "lru": {}, "mru": {}, "nmru": {}, "rr": {},
	"lfu": {}, "mfu": {}, "tlru": {}, "mq": {},
}
