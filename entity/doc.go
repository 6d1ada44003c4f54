// Package entity defines the closed set of geometry variants a drawing
// document can contain: line segments, circles, polylines, and arcs.
//
// # Variants
//
// Entity is a sealed interface; the four variants in this package are the
// only implementations, so consumers (serialization, validation, rendering
// collaborators) can type-switch exhaustively and adding a variant is a
// compile-time-visible change.
//
// # Construction
//
// Each variant is materialized through its constructor and nowhere else,
// including deserialization. Constructors are the single enforcement point
// for per-variant invariants:
//   - Circle and Arc require a positive, finite radius
//   - Arc requires finite start and end angles
//   - Polyline requires at least 2 points
//
// Caller-provided sequences (Polyline points, Style dash patterns) are
// copied before invariants run, so later mutation of the caller's slice
// cannot corrupt a constructed value or retroactively bypass a length
// check.
//
// Identifiers are not validated at construction; blank or duplicate ids
// are a validation-layer concern.
//
// Example usage:
//
//	seg := entity.NewSegment("e1", "walls",
//		geom.Point{X: 0, Y: 0},
//		geom.Point{X: 10, Y: 0},
//		entity.NewStyle("#000000", 1.0, nil),
//	)
//
//	circle, err := entity.NewCircle("e2", "", geom.Point{X: 5, Y: 5}, 2.5, entity.Style{})
//	if err != nil {
//		log.Fatal(err)
//	}
package entity
