package sdk

import (
	"fmt"

	"github.com/sketchdoc/sdk/document"
	"github.com/sketchdoc/sdk/validate"
)

// SchemaVersion is the document schema version this build reads and
// writes.
const SchemaVersion = document.CurrentSchemaVersion

// Parse reconstructs a document from its JSON form. Geometry passes
// through the same constructors as documents built in process, so a
// payload that parses is structurally sound; use Validate or
// ValidatePayload for the full check sequence.
//
// Example:
//
//	doc, err := sdk.Parse(payload)
//	if err != nil {
//	    return fmt.Errorf("bad payload: %w", err)
//	}
func Parse(data []byte) (*document.Document, error) {
	return document.Parse(data)
}

// Validate runs the full check sequence against doc and returns every
// violation found, blocking or not. An empty slice means the document
// is valid.
//
// Example:
//
//	for _, v := range sdk.Validate(doc) {
//	    log.Println(v.String())
//	}
func Validate(doc *document.Document) []validate.Violation {
	return validate.Document(doc)
}

// ValidatePayload parses raw bytes and validates the result in one
// step. Parse failures and blocking violations reject the payload with
// a *validate.Error; accepted documents may still carry warnings,
// which Validate reports.
//
// Example:
//
//	doc, err := sdk.ValidatePayload(payload)
//	if err != nil {
//	    var verr *validate.Error
//	    if errors.As(err, &verr) {
//	        report(verr.Violations)
//	    }
//	    return err
//	}
func ValidatePayload(data []byte) (*document.Document, error) {
	return validate.Payload(data)
}

// CanonicalJSON renders doc in canonical form: fixed key order,
// collections sorted by id, coordinates rounded to four decimal places,
// explicit nulls, two-space indentation, Unix line breaks.
func CanonicalJSON(doc *document.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is nil")
	}
	return doc.CanonicalJSON()
}

// ContentHash returns the lowercase hex SHA-256 digest of doc's
// canonical form. Documents with equal content hash equally.
func ContentHash(doc *document.Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("document is nil")
	}
	return doc.ContentHash()
}
