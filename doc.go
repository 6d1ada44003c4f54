// Package sdk provides the document core for the SketchDoc drawing
// format.
//
// The SDK parses, validates, canonicalizes, and hashes versioned 2D
// drawing documents. It is the shared foundation for every process that
// stores, syncs, or compares drawings: two documents with equal content
// always produce byte-identical canonical JSON and therefore the same
// content hash, regardless of the order their collections were
// assembled in or the binary noise in their coordinates.
//
// # Core Concepts
//
// The SDK is organized around a few key concepts:
//
//   - Documents: versioned containers holding a page, layers, entities,
//     annotations, and sync state
//   - Entities: the drawn geometry (line segments, circles, polylines,
//     arcs), each on an optional layer
//   - Annotations: non-geometric attachments (text notes, dimensions,
//     tags, groups) that may reference entities by id
//   - Canonical form: the single normalized JSON rendering of a
//     document, with sorted collections and rounded coordinates
//   - Content hash: the SHA-256 digest of the canonical form, used as a
//     document's content identity
//
// # Package Layout
//
// Functionality is split across focused packages:
//
//   - round: deterministic decimal rounding for coordinates
//   - geom: points and vector arithmetic
//   - unit: measurement units and conversion factors
//   - entity, annot: the sealed entity and annotation variants
//   - document: the document container, canonical encoding, parsing,
//     and hashing
//   - validate: the violation taxonomy, cardinality limits, custom CEL
//     rules, and the validator
//   - gate: payload admission and export with OpenTelemetry
//   - protoconv: conversion to and from the protobuf Struct type
//
// This root package re-exports the everyday operations so most callers
// import it alone.
//
// # Getting Started
//
// Parse a payload and validate it in one step:
//
//	import "github.com/sketchdoc/sdk"
//
//	doc, err := sdk.ValidatePayload(payload)
//	if err != nil {
//		var verr *validate.Error
//		if errors.As(err, &verr) {
//			for _, v := range verr.Violations {
//				log.Println(v.String())
//			}
//		}
//		return err
//	}
//
//	hash, err := sdk.ContentHash(doc)
//
// # Building Documents
//
// Documents and their contents are built through constructors; invalid
// geometry is rejected at construction:
//
//	circle, err := entity.NewCircle("e1", "walls", geom.Point{X: 5, Y: 5}, 2.5, style)
//	if err != nil {
//		return err
//	}
//
//	doc := document.New("", "Floor plan", page,
//		document.WithEntities(circle),
//	)
//
// # Canonical Form
//
// CanonicalJSON renders a document with a fixed key order, collections
// sorted by id, metadata keys sorted, all coordinates rounded to four
// decimal places, explicit nulls for absent optional fields, and
// two-space indentation with Unix line breaks. The rendering is a pure
// function of document content.
//
// # Validation
//
// Validation never raises on document defects; it returns a list of
// violations with severities. Only ERROR severity blocks a payload:
//
//	for _, v := range sdk.Validate(doc) {
//		if v.Severity == validate.SeverityError {
//			// blocking
//		}
//	}
//
// Deployments add their own checks with CEL expressions through
// validate.NewRule.
//
// # Error Handling
//
// Operational failures use sentinel errors and wrapped errors:
//
//	if _, err := round.To(value, 12); errors.Is(err, round.ErrDecimals) {
//		// unsupported precision
//	}
//
// Rejected payloads return a *validate.Error carrying every violation
// found.
//
// # Thread Safety
//
// Documents are immutable after construction and safe for concurrent
// reads. Validators and gates are safe for concurrent use.
package sdk
