// Package obsmetrics exposes cachekit engine statistics as Prometheus
// metrics for the cachebench CLI's metrics endpoint, which the run
// command starts when the config sets metrics.enabled.
package obsmetrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Krishna8167/cachekit"
)

// Metrics holds the Prometheus collectors tracking one or more named
// cache instances.
type Metrics struct {
	Hits        *prometheus.GaugeVec
	Misses      *prometheus.GaugeVec
	HitRatio    *prometheus.GaugeVec
	CurrentSize *prometheus.GaugeVec
	MaxSize     *prometheus.GaugeVec

	registry *prometheus.Registry
}

// New creates and registers the cache gauges, labeled by cache name and
// policy.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	labels := []string{"cache", "policy"}

	m := &Metrics{
		Hits: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cachekit_hits_total",
			Help: "Cumulative hit count observed at the last sample.",
		}, labels),
		Misses: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cachekit_misses_total",
			Help: "Cumulative miss count observed at the last sample.",
		}, labels),
		HitRatio: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cachekit_hit_ratio",
			Help: "Hits / (hits + misses) at the last sample.",
		}, labels),
		CurrentSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cachekit_current_size",
			Help: "Number of entries currently held.",
		}, labels),
		MaxSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "cachekit_max_size",
			Help: "Configured capacity; not set for unbounded policies.",
		}, labels),
		registry: reg,
	}

	reg.MustRegister(m.Hits, m.Misses, m.HitRatio, m.CurrentSize, m.MaxSize)
	return m
}

// Observe samples one cache's Stats and updates its gauges.
func (m *Metrics) Observe(name, policy string, stats cachekit.Stats) {
	labels := prometheus.Labels{"cache": name, "policy": policy}
	m.Hits.With(labels).Set(float64(stats.Hits))
	m.Misses.With(labels).Set(float64(stats.Misses))
	m.HitRatio.With(labels).Set(stats.HitRate())
	m.CurrentSize.With(labels).Set(float64(stats.CurrentSize))
	if stats.MaxSize != cachekit.Unbounded {
		m.MaxSize.With(labels).Set(float64(stats.MaxSize))
	}
}

// Handler returns the HTTP handler serving the Prometheus exposition
// format at /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
