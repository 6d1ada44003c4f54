package entity

import (
	"fmt"

	"github.com/sketchdoc/sdk/geom"
)

// Arc is a circular arc around a center point. Angles are in degrees,
// counter-clockwise from the positive X axis. Wire kind "arc".
//
// Equal start and end angles are permitted and represent a full circle
// drawn as an arc.
type Arc struct {
	base
	center     geom.Point
	radius     float64
	startAngle float64
	endAngle   float64
}

// NewArc creates an arc. The radius must be positive and finite, and both
// angles must be finite.
func NewArc(id, layer string, center geom.Point, radius, startAngle, endAngle float64) (*Arc, error) {
	if !finite(radius) || radius <= 0 {
		return nil, fmt.Errorf("arc radius must be positive and finite, got %v", radius)
	}
	if !finite(startAngle) {
		return nil, fmt.Errorf("arc start angle must be finite, got %v", startAngle)
	}
	if !finite(endAngle) {
		return nil, fmt.Errorf("arc end angle must be finite, got %v", endAngle)
	}
	return &Arc{
		base:       base{id: id, layer: layer},
		center:     center,
		radius:     radius,
		startAngle: startAngle,
		endAngle:   endAngle,
	}, nil
}

// Kind returns KindArc.
func (a *Arc) Kind() Kind { return KindArc }

// Center returns the arc's center point.
func (a *Arc) Center() geom.Point { return a.center }

// Radius returns the arc's radius.
func (a *Arc) Radius() float64 { return a.radius }

// StartAngle returns the start angle in degrees.
func (a *Arc) StartAngle() float64 { return a.startAngle }

// EndAngle returns the end angle in degrees.
func (a *Arc) EndAngle() float64 { return a.endAngle }
