// Package document defines the aggregate root of the drawing format and
// owns its canonical serialization and content hashing.
//
// # Documents
//
// A Document is created fully formed and never mutated afterward; editing
// means producing a new value. It aggregates a page definition, layers,
// geometry entities, metadata annotations, free-form string metadata, and
// the synchronization bookkeeping a sync collaborator needs to detect
// divergence (sync id, sync status, updated-at, version). No cross-field
// invariant is enforced at construction; referential integrity and
// cardinality are the validator's concern.
//
// # Canonical form
//
// CanonicalJSON produces the unique byte representation of a document:
// entities, annotations, and layers sorted by id, metadata keys sorted,
// every float rounded to four decimals, 2-space indentation with "\n"
// line breaks, and explicit nulls for absent optional fields. Two
// documents that differ only in collection insertion order produce
// byte-identical canonical JSON, and therefore the same ContentHash
// (SHA-256 over the canonical bytes, hex encoded).
//
// # Parsing
//
// Parse decodes a wire payload back into a Document, routing every entity
// and annotation through its package constructor so no invalid variant
// can be materialized from external data. Parse(CanonicalJSON(d)) yields
// a document whose canonical JSON is byte-identical to d's.
//
// Example usage:
//
//	doc := document.New("", "Floor plan",
//		document.Page{Width: 210, Height: 297, Units: unit.Millimeters},
//		document.WithEntities(seg, circle),
//		document.WithMetadata(map[string]string{"author": "field-app"}),
//	)
//
//	data, err := doc.CanonicalJSON()
//	if err != nil {
//		log.Fatal(err)
//	}
//	hash, err := doc.ContentHash()
//	if err != nil {
//		log.Fatal(err)
//	}
package document
