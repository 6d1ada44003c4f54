package entity

import (
	"fmt"
	"math"
)

// Kind is the wire discriminator for an entity variant. Tokens are fixed
// short strings, never internal type names, so the wire format survives
// refactors.
type Kind string

const (
	// KindLine identifies a straight line segment.
	KindLine Kind = "line"

	// KindCircle identifies a full circle.
	KindCircle Kind = "circle"

	// KindPolyline identifies an open or closed point chain.
	KindPolyline Kind = "polyline"

	// KindArc identifies a circular arc.
	KindArc Kind = "arc"
)

// IsValid returns true if the kind is one of the supported discriminators.
func (k Kind) IsValid() bool {
	switch k {
	case KindLine, KindCircle, KindPolyline, KindArc:
		return true
	default:
		return false
	}
}

// String returns the wire token for the kind.
func (k Kind) String() string {
	return string(k)
}

// ParseKind parses a wire token into a Kind value.
// Returns an error if the token is not a supported entity discriminator.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid entity kind: %q", s)
	}
	return k, nil
}

// AllKinds returns every supported entity kind.
func AllKinds() []Kind {
	return []Kind{KindLine, KindCircle, KindPolyline, KindArc}
}

// Entity is the closed abstraction over the geometry variants Segment,
// Circle, Polyline, and Arc. It is sealed: only this package can add
// implementations, which keeps exhaustive type switches at consumption
// sites honest.
//
// Every entity carries a stable identifier and an optional layer
// reference. The layer reference is a named lookup into Document.Layers,
// never an ownership edge.
type Entity interface {
	// ID returns the entity's stable identifier.
	ID() string

	// Layer returns the id of the layer this entity belongs to, or the
	// empty string when the entity is not assigned to a layer.
	Layer() string

	// Kind returns the wire discriminator for the concrete variant.
	Kind() Kind

	sealed()
}

// base carries the identifier and layer reference common to all variants.
type base struct {
	id    string
	layer string
}

// ID returns the entity's stable identifier.
func (b base) ID() string { return b.id }

// Layer returns the containing layer id, or "" when unassigned.
func (b base) Layer() string { return b.layer }

func (base) sealed() {}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
