package annot

import "fmt"

// Kind is the wire discriminator for an annotation variant.
type Kind string

const (
	// KindText identifies a free-text note.
	KindText Kind = "text"

	// KindDimension identifies a measured value.
	KindDimension Kind = "dimension"

	// KindTag identifies a category label.
	KindTag Kind = "tag"

	// KindGroup identifies a logical grouping of entities.
	KindGroup Kind = "group"
)

// IsValid returns true if the kind is one of the supported discriminators.
func (k Kind) IsValid() bool {
	switch k {
	case KindText, KindDimension, KindTag, KindGroup:
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
// Returns an error if the token is not a supported annotation discriminator.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid annotation kind: %q", s)
	}
	return k, nil
}

// AllKinds returns every supported annotation kind.
func AllKinds() []Kind {
	return []Kind{KindText, KindDimension, KindTag, KindGroup}
}

// Annotation is the closed abstraction over the metadata variants Text,
// Dimension, Tag, and Group. Sealed so consumers can type-switch
// exhaustively.
type Annotation interface {
	// ID returns the annotation's stable identifier.
	ID() string

	// TargetID returns the id of the entity this annotation refers to,
	// or the empty string when it refers to none. Dimension and Tag
	// require a target; Text and Group do not.
	TargetID() string

	// Kind returns the wire discriminator for the concrete variant.
	Kind() Kind

	sealed()
}

// base carries the identifier and target reference common to all variants.
type base struct {
	id     string
	target string
}

// ID returns the annotation's stable identifier.
func (b base) ID() string { return b.id }

// TargetID returns the referenced entity id, or "" when there is none.
func (b base) TargetID() string { return b.target }

func (base) sealed() {}
