package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/wayfarer-ui/wayfarer/pkg/nav"
)

// Default tracer name for navigation spans.
const defaultTracerName = "wayfarer"

// TracerConfig configures the OpenTelemetry observer.
type TracerConfig struct {
	// TracerName is the name of the tracer (default: "wayfarer").
	TracerName string

	// Filter determines which commands to trace.
	// Return true to trace; nil traces everything.
	Filter func(cmd nav.Command) bool

	// AttributeExtractor adds custom attributes per command.
	AttributeExtractor func(cmd nav.Command) []attribute.KeyValue
}

// TracerOption configures the OpenTelemetry observer.
type TracerOption func(*TracerConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracerOption {
	return func(c *TracerConfig) {
		c.TracerName = name
	}
}

// WithCommandFilter sets a filter function for commands.
func WithCommandFilter(filter func(cmd nav.Command) bool) TracerOption {
	return func(c *TracerConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(cmd nav.Command) []attribute.KeyValue) TracerOption {
	return func(c *TracerConfig) {
		c.AttributeExtractor = extractor
	}
}

// Tracer is a nav.CommandObserver emitting one span per navigation
// command. Navigation commands are synchronous state transitions, so the
// span is opened and closed in the callback; its value is in linking
// navigation activity into the surrounding trace timeline.
//
// The tracer resolves from the global OpenTelemetry provider; configure
// that in main() before wiring the observer.
type Tracer struct {
	config TracerConfig
	tracer trace.Tracer
}

// NewTracer creates the OpenTelemetry observer.
func NewTracer(opts ...TracerOption) *Tracer {
	config := TracerConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	return &Tracer{
		config: config,
		tracer: otel.Tracer(config.TracerName),
	}
}

// NavigationChanged implements nav.CommandObserver.
func (t *Tracer) NavigationChanged(cmd nav.Command) {
	if t.config.Filter != nil && !t.config.Filter(cmd) {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("nav.context", cmd.Context.String()),
		attribute.String("nav.op", string(cmd.Op)),
		attribute.String("nav.tab", cmd.Tab),
		attribute.Int("nav.depth", cmd.Depth),
		attribute.Bool("nav.presenting", cmd.Presenting),
	}
	if t.config.AttributeExtractor != nil {
		attrs = append(attrs, t.config.AttributeExtractor(cmd)...)
	}

	_, span := t.tracer.Start(
		context.Background(),
		fmt.Sprintf("nav.%s", cmd.Op),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	span.End()
}
