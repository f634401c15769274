// Package telemetry provides command observers that export navigation
// activity to Prometheus and OpenTelemetry. Both attach through
// nav.CommandObserver, so the core stays free of instrumentation
// concerns:
//
//	meta.Observe(telemetry.NewMetrics())
//	meta.Observe(telemetry.NewTracer())
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/wayfarer-ui/wayfarer/pkg/nav"
)

// MetricsConfig configures the Prometheus observer.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "wayfarer").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus observer.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "wayfarer",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics is a nav.CommandObserver exporting Prometheus metrics.
//
// Metrics collected:
//   - wayfarer_commands_total: counter of commands by context and op
//   - wayfarer_stack_depth: gauge of the active stack depth by context
//   - wayfarer_presenting: gauge (0/1) of modal presentation by context
type Metrics struct {
	commandsTotal *prometheus.CounterVec
	stackDepth    *prometheus.GaugeVec
	presenting    *prometheus.GaugeVec
}

// NewMetrics creates the Prometheus observer, registering its collectors
// with the configured registry.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		commandsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "commands_total",
			Help:        "Total number of navigation commands by context and op",
			ConstLabels: config.ConstLabels,
		}, []string{"context", "op"}),

		stackDepth: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "stack_depth",
			Help:        "Active navigation stack depth by context",
			ConstLabels: config.ConstLabels,
		}, []string{"context"}),

		presenting: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "presenting",
			Help:        "Whether a sheet or cover is presented by context (0 or 1)",
			ConstLabels: config.ConstLabels,
		}, []string{"context"}),
	}
}

// NavigationChanged implements nav.CommandObserver.
func (m *Metrics) NavigationChanged(cmd nav.Command) {
	context := cmd.Context.String()

	m.commandsTotal.WithLabelValues(context, string(cmd.Op)).Inc()
	m.stackDepth.WithLabelValues(context).Set(float64(cmd.Depth))

	presented := 0.0
	if cmd.Presenting {
		presented = 1.0
	}
	m.presenting.WithLabelValues(context).Set(presented)
}
