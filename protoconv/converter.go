package protoconv

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/sketchdoc/sdk/document"
)

// ToStruct converts a document to a protobuf Struct holding its
// canonical form. Field values carry the same rounding and ordering
// guarantees as CanonicalJSON.
func ToStruct(doc *document.Document) (*structpb.Struct, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is nil")
	}

	data, err := doc.CanonicalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize document: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode canonical JSON: %w", err)
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build struct: %w", err)
	}
	return s, nil
}

// FromStruct reconstructs a document from a protobuf Struct produced by
// ToStruct or an equivalent encoder. The payload goes through the same
// parsing and constructor checks as raw JSON.
func FromStruct(s *structpb.Struct) (*document.Document, error) {
	if s == nil {
		return nil, fmt.Errorf("struct is nil")
	}

	data, err := json.Marshal(s.AsMap())
	if err != nil {
		return nil, fmt.Errorf("failed to encode struct: %w", err)
	}

	return document.Parse(data)
}
