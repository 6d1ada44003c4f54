package annot

import (
	"fmt"

	"github.com/sketchdoc/sdk/geom"
	"github.com/sketchdoc/sdk/unit"
)

// Dimension is a measured value attached to an entity. Wire kind
// "dimension".
type Dimension struct {
	base
	value    float64
	units    unit.Unit
	position geom.Point
}

// NewDimension creates a dimension annotation. The measured value must be
// non-negative and the units must be a supported unit. The target entity
// is required by the format; a blank targetID is constructible here and
// reported by the validator as a missing field.
func NewDimension(id, targetID string, value float64, units unit.Unit, position geom.Point) (*Dimension, error) {
	if !(value >= 0) {
		return nil, fmt.Errorf("dimension value must be non-negative, got %v", value)
	}
	if !units.IsValid() {
		return nil, fmt.Errorf("invalid dimension units: %q", units)
	}
	return &Dimension{
		base:     base{id: id, target: targetID},
		value:    value,
		units:    units,
		position: position,
	}, nil
}

// Kind returns KindDimension.
func (d *Dimension) Kind() Kind { return KindDimension }

// Value returns the measured value.
func (d *Dimension) Value() float64 { return d.value }

// Units returns the measurement units.
func (d *Dimension) Units() unit.Unit { return d.units }

// Position returns the label position.
func (d *Dimension) Position() geom.Point { return d.position }
