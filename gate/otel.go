package gate

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// meterName identifies this package's metric instruments.
const meterName = "github.com/sketchdoc/sdk/gate"

// gateMetrics holds the metric instruments, created once in New and
// reused for every operation.
type gateMetrics struct {
	// admitted increments for each payload accepted through Admit.
	admitted metric.Int64Counter

	// rejected increments for each payload refused by Admit.
	rejected metric.Int64Counter
}

func initMetrics(meter metric.Meter) (*gateMetrics, error) {
	metrics := &gateMetrics{}
	var err error

	metrics.admitted, err = meter.Int64Counter(
		"gate.admitted",
		metric.WithDescription("Number of payloads admitted"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create admitted counter: %w", err)
	}

	metrics.rejected, err = meter.Int64Counter(
		"gate.rejected",
		metric.WithDescription("Number of payloads rejected"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create rejected counter: %w", err)
	}

	return metrics, nil
}

// startSpan begins a span when a tracer is configured. Without one it
// hands back the span already on the context, which is a no-op span
// when absent, so callers never nil-check.
func (g *Gate) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if g.tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return g.tracer.Start(ctx, name)
}

func (g *Gate) countAdmitted(ctx context.Context) {
	if g.metrics != nil && g.metrics.admitted != nil {
		g.metrics.admitted.Add(ctx, 1)
	}
}

func (g *Gate) countRejected(ctx context.Context) {
	if g.metrics != nil && g.metrics.rejected != nil {
		g.metrics.rejected.Add(ctx, 1)
	}
}
