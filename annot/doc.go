// Package annot defines the closed set of metadata annotations a drawing
// document can carry: free text, measured dimensions, category tags, and
// logical groups.
//
// Annotation is sealed like entity.Entity: the four variants here are the
// only implementations, and every materialization path runs through the
// variant's constructor.
//
// Annotations reference entities by identifier. A target reference is a
// named lookup, never an ownership edge; whether the referenced entity
// exists is checked by the validator, not at construction. Text and Group
// targets are optional (empty string means none); Dimension and Tag
// targets are required, and a blank one surfaces as a missing-field
// violation during validation.
package annot
