// Package gate moves documents across a trust boundary. Admit parses
// and validates raw payloads on the way in; Export produces canonical
// bytes and a content hash on the way out. Both operations are traced
// and counted when OpenTelemetry is configured and log through slog.
//
// The zero-configuration gate from New validates with the default
// limits and logs through slog.Default. Telemetry is opt-in:
//
//	gate := gate.New(
//		gate.WithTracer(tracer),
//		gate.WithMeterProvider(meterProvider),
//	)
//
//	doc, hash, err := gate.Admit(ctx, payload)
package gate
