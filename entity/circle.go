package entity

import (
	"fmt"

	"github.com/sketchdoc/sdk/geom"
)

// Circle is a full circle around a center point. Wire kind "circle".
type Circle struct {
	base
	center geom.Point
	radius float64
	style  Style
}

// NewCircle creates a circle. The radius must be positive and finite;
// anything else fails construction so an invalid circle never exists in
// memory.
func NewCircle(id, layer string, center geom.Point, radius float64, style Style) (*Circle, error) {
	if !finite(radius) || radius <= 0 {
		return nil, fmt.Errorf("circle radius must be positive and finite, got %v", radius)
	}
	return &Circle{
		base:   base{id: id, layer: layer},
		center: center,
		radius: radius,
		style:  style,
	}, nil
}

// Kind returns KindCircle.
func (c *Circle) Kind() Kind { return KindCircle }

// Center returns the circle's center point.
func (c *Circle) Center() geom.Point { return c.center }

// Radius returns the circle's radius.
func (c *Circle) Radius() float64 { return c.radius }

// Style returns the circle's stroke style.
func (c *Circle) Style() Style { return c.style }
