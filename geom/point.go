// Package geom provides the 2D value types shared by entities, annotations,
// and page geometry.
//
// Points carry no construction invariant: NaN and infinite coordinates are
// representable at this layer because upstream capture pipelines produce
// transiently non-finite intermediates. Finiteness is enforced by the
// validator, not here.
package geom

import (
	"math"

	"github.com/sketchdoc/sdk/round"
)

// Point is an immutable 2D position in document coordinates.
type Point struct {
	// X is the horizontal coordinate.
	X float64 `json:"x"`

	// Y is the vertical coordinate.
	Y float64 `json:"y"`
}

// Vector is a 2D displacement. It shares Point's representation; the
// distinction is directional intent at call sites.
type Vector = Point

// Add returns the point translated by v. Total, including on non-finite
// coordinates.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns the point with both coordinates multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Canonical returns a copy with both coordinates rounded to the precision
// used on the serialization boundary. Idempotent: Canonical of a canonical
// point is itself. Coordinates the rounding engine rejects (non-finite or
// out of range) pass through unchanged, so Canonical is total.
func (p Point) Canonical() Point {
	return Point{X: round.Coord(p.X), Y: round.Coord(p.Y)}
}

// IsFinite reports whether both coordinates are finite (neither NaN nor
// infinite).
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
