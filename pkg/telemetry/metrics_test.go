package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/wayfarer-ui/wayfarer/pkg/nav"
	"github.com/wayfarer-ui/wayfarer/pkg/navtest"
)

func TestMetricsCountsCommands(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(WithRegistry(registry))

	meta, err := nav.NewMetaRouter(navtest.NewDemoTree())
	if err != nil {
		t.Fatalf("NewMetaRouter: %v", err)
	}
	meta.Observe(metrics)

	root := nav.MustRouterFor(meta, navtest.DemoMain)
	root.Select(navtest.TabLibrary).
		Push(navtest.DemoScreen{Name: "album"}).
		Push(navtest.DemoScreen{Name: "track"})

	selects := testutil.ToFloat64(metrics.commandsTotal.WithLabelValues("main", "select"))
	if selects != 1 {
		t.Errorf("expected 1 select command, got %v", selects)
	}
	pushes := testutil.ToFloat64(metrics.commandsTotal.WithLabelValues("main", "push"))
	if pushes != 2 {
		t.Errorf("expected 2 push commands, got %v", pushes)
	}

	depth := testutil.ToFloat64(metrics.stackDepth.WithLabelValues("main"))
	if depth != 2 {
		t.Errorf("expected stack depth 2, got %v", depth)
	}
}

func TestMetricsPresentingGauge(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(WithRegistry(registry))

	meta, err := nav.NewMetaRouter(navtest.NewDemoTree())
	if err != nil {
		t.Fatalf("NewMetaRouter: %v", err)
	}
	meta.Observe(metrics)

	root := nav.MustRouterFor(meta, navtest.DemoMain)

	root.PresentSheet(navtest.DemoModal{Name: "settings"})
	if got := testutil.ToFloat64(metrics.presenting.WithLabelValues("main")); got != 1 {
		t.Errorf("expected presenting gauge 1, got %v", got)
	}

	root.Dismiss()
	if got := testutil.ToFloat64(metrics.presenting.WithLabelValues("main")); got != 0 {
		t.Errorf("expected presenting gauge 0, got %v", got)
	}
}

func TestMetricsSeparateContexts(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(WithRegistry(registry))

	meta, err := nav.NewMetaRouter(navtest.NewDemoTree())
	if err != nil {
		t.Fatalf("NewMetaRouter: %v", err)
	}
	meta.Observe(metrics)

	nav.MustRouterFor(meta, navtest.DemoMain).Push(navtest.DemoScreen{Name: "a"})
	nav.MustRouterFor(meta, navtest.DemoPlayer).Push(navtest.DemoScreen{Name: "b"})

	if got := testutil.ToFloat64(metrics.commandsTotal.WithLabelValues("main", "push")); got != 1 {
		t.Errorf("expected 1 main push, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.commandsTotal.WithLabelValues("player", "push")); got != 1 {
		t.Errorf("expected 1 player push, got %v", got)
	}
}

func TestTracerObserverDoesNotPanic(t *testing.T) {
	// No tracer provider configured: spans are no-ops, the observer must
	// still be safe to attach.
	tracer := NewTracer(WithCommandFilter(func(cmd nav.Command) bool {
		return cmd.Op != nav.OpDismiss
	}))

	meta, err := nav.NewMetaRouter(navtest.NewDemoTree())
	if err != nil {
		t.Fatalf("NewMetaRouter: %v", err)
	}
	meta.Observe(tracer)

	nav.MustRouterFor(meta, navtest.DemoMain).
		Select(navtest.TabProfile).
		PresentSheet(navtest.DemoModal{Name: "m"}).
		Dismiss()
}
