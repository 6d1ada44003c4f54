package annot

// Tag attaches a category label to an entity. Wire kind "tag".
type Tag struct {
	base
	label    string
	category string
}

// NewTag creates a tag annotation. An empty category means uncategorized.
// The target entity is required by the format; a blank targetID is
// constructible here and reported by the validator as a missing field.
func NewTag(id, targetID, label, category string) *Tag {
	return &Tag{
		base:     base{id: id, target: targetID},
		label:    label,
		category: category,
	}
}

// Kind returns KindTag.
func (t *Tag) Kind() Kind { return KindTag }

// Label returns the tag label.
func (t *Tag) Label() string { return t.label }

// Category returns the tag category, or "" when uncategorized.
func (t *Tag) Category() string { return t.category }
