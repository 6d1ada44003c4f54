package gate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/sketchdoc/sdk/document"
	"github.com/sketchdoc/sdk/validate"
)

// Gate admits raw payloads into the system and exports documents out of
// it.
type Gate struct {
	validator     *validate.Validator
	logger        *slog.Logger
	tracer        trace.Tracer
	meterProvider metric.MeterProvider
	metrics       *gateMetrics
}

// Option configures a Gate.
type Option func(*Gate)

// WithValidator replaces the default validator.
func WithValidator(v *validate.Validator) Option {
	return func(g *Gate) { g.validator = v }
}

// WithLogger replaces the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gate) { g.logger = logger }
}

// WithTracer enables span creation around gate operations.
func WithTracer(tracer trace.Tracer) Option {
	return func(g *Gate) { g.tracer = tracer }
}

// WithMeterProvider enables the admitted/rejected counters.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(g *Gate) { g.meterProvider = mp }
}

// New builds a gate. Telemetry failures degrade gracefully; a gate
// without tracer or meter runs the same checks without recording.
func New(opts ...Option) *Gate {
	g := &Gate{}
	for _, opt := range opts {
		opt(g)
	}
	if g.validator == nil {
		g.validator = validate.New()
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if g.meterProvider != nil {
		metrics, err := initMetrics(g.meterProvider.Meter(meterName))
		if err != nil {
			g.logger.Warn("failed to initialize gate metrics", "error", err)
		}
		g.metrics = metrics
	}
	return g
}

// Admit parses and validates a raw payload. Accepted documents are
// returned with their content hash; rejected payloads return the
// *validate.Error carrying every violation found.
func (g *Gate) Admit(ctx context.Context, payload []byte) (*document.Document, string, error) {
	ctx, span := g.startSpan(ctx, "gate.admit")
	defer span.End()
	span.SetAttributes(attribute.Int("payload.bytes", len(payload)))

	doc, err := g.validator.Payload(payload)
	if err != nil {
		g.countRejected(ctx)
		var verr *validate.Error
		if errors.As(err, &verr) {
			span.SetAttributes(attribute.Int("gate.violations", len(verr.Violations)))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "payload rejected")
		g.logger.Warn("payload rejected", "error", err)
		return nil, "", err
	}

	hash, err := doc.ContentHash()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "hashing failed")
		return nil, "", fmt.Errorf("failed to hash admitted document: %w", err)
	}

	g.countAdmitted(ctx)
	span.SetAttributes(
		attribute.String("document.id", doc.ID()),
		attribute.String("document.hash", hash),
	)
	span.SetStatus(codes.Ok, "payload admitted")
	g.logger.Info("payload admitted", "document_id", doc.ID(), "hash", hash)
	return doc, hash, nil
}

// Export canonicalizes doc for transport, returning the canonical bytes
// and their content hash.
func (g *Gate) Export(ctx context.Context, doc *document.Document) ([]byte, string, error) {
	_, span := g.startSpan(ctx, "gate.export")
	defer span.End()

	if doc == nil {
		err := fmt.Errorf("cannot export nil document")
		span.SetStatus(codes.Error, err.Error())
		return nil, "", err
	}

	data, err := doc.CanonicalJSON()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "canonicalization failed")
		g.logger.Error("export failed", "document_id", doc.ID(), "error", err)
		return nil, "", err
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	span.SetAttributes(
		attribute.String("document.id", doc.ID()),
		attribute.String("document.hash", hash),
		attribute.Int("document.bytes", len(data)),
	)
	span.SetStatus(codes.Ok, "document exported")
	g.logger.Debug("document exported", "document_id", doc.ID(), "bytes", len(data))
	return data, hash, nil
}
