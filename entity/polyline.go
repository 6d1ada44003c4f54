package entity

import (
	"fmt"

	"github.com/sketchdoc/sdk/geom"
)

// Polyline is an ordered chain of points, open or closed. Wire kind
// "polyline".
type Polyline struct {
	base
	points []geom.Point
	closed bool
	style  Style
}

// NewPolyline creates a polyline from the given points. The slice is
// copied before the length invariant runs, so clearing the caller's slice
// afterward leaves the constructed value intact. At least 2 points are
// required.
func NewPolyline(id, layer string, points []geom.Point, closed bool, style Style) (*Polyline, error) {
	owned := make([]geom.Point, len(points))
	copy(owned, points)
	if len(owned) < 2 {
		return nil, fmt.Errorf("polyline requires at least 2 points, got %d", len(owned))
	}
	return &Polyline{
		base:   base{id: id, layer: layer},
		points: owned,
		closed: closed,
		style:  style,
	}, nil
}

// Kind returns KindPolyline.
func (p *Polyline) Kind() Kind { return KindPolyline }

// Points returns a copy of the point chain.
func (p *Polyline) Points() []geom.Point {
	out := make([]geom.Point, len(p.points))
	copy(out, p.points)
	return out
}

// PointCount returns the number of points without copying.
func (p *Polyline) PointCount() int { return len(p.points) }

// Closed reports whether the last point connects back to the first.
func (p *Polyline) Closed() bool { return p.closed }

// Style returns the polyline's stroke style.
func (p *Polyline) Style() Style { return p.style }
