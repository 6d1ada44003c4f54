package annot

import "github.com/sketchdoc/sdk/geom"

// Text is a free-text note placed at a position, optionally attached to an
// entity. Wire kind "text".
//
// Font size and rotation are carried verbatim; interpreting or bounding
// them is deferred to the rendering collaborator.
type Text struct {
	base
	position geom.Point
	content  string
	fontSize float64
	rotation float64
}

// NewText creates a text annotation. An empty targetID means the note is
// free-standing.
func NewText(id, targetID string, position geom.Point, content string, fontSize, rotation float64) *Text {
	return &Text{
		base:     base{id: id, target: targetID},
		position: position,
		content:  content,
		fontSize: fontSize,
		rotation: rotation,
	}
}

// Kind returns KindText.
func (t *Text) Kind() Kind { return KindText }

// Position returns the anchor point of the note.
func (t *Text) Position() geom.Point { return t.position }

// Content returns the note text.
func (t *Text) Content() string { return t.content }

// FontSize returns the requested font size.
func (t *Text) FontSize() float64 { return t.fontSize }

// Rotation returns the rotation in degrees.
func (t *Text) Rotation() float64 { return t.rotation }
