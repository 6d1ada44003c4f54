package entity

import "github.com/sketchdoc/sdk/geom"

// Segment is a straight line between two points. Wire kind "line".
//
// A zero-length segment is constructible: it is geometrically degenerate
// but legal, and the validator reports it as a warning rather than
// refusing construction.
type Segment struct {
	base
	start geom.Point
	end   geom.Point
	style Style
}

// NewSegment creates a line segment from start to end on the given layer
// (empty layer means unassigned).
func NewSegment(id, layer string, start, end geom.Point, style Style) *Segment {
	return &Segment{
		base:  base{id: id, layer: layer},
		start: start,
		end:   end,
		style: style,
	}
}

// Kind returns KindLine.
func (s *Segment) Kind() Kind { return KindLine }

// Start returns the segment's start point.
func (s *Segment) Start() geom.Point { return s.start }

// End returns the segment's end point.
func (s *Segment) End() geom.Point { return s.end }

// Style returns the segment's stroke style.
func (s *Segment) Style() Style { return s.style }

// Length returns the Euclidean distance between the endpoints.
func (s *Segment) Length() float64 {
	return s.start.DistanceTo(s.end)
}
