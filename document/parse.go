package document

import (
	"encoding/json"
	"fmt"

	"github.com/sketchdoc/sdk/annot"
	"github.com/sketchdoc/sdk/entity"
	"github.com/sketchdoc/sdk/unit"
)

// documentEnvelope defers entity and annotation decoding so each element
// can be routed through its variant constructor.
type documentEnvelope struct {
	SchemaVersion int               `json:"schema_version"`
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Page          wirePage          `json:"page"`
	Layers        []wireLayer       `json:"layers"`
	Entities      []json.RawMessage `json:"entities"`
	Annotations   []json.RawMessage `json:"annotations"`
	Metadata      map[string]string `json:"metadata"`
	SyncID        *string           `json:"sync_id"`
	SyncStatus    string            `json:"sync_status"`
	UpdatedAt     int64             `json:"updated_at"`
	Version       int               `json:"version"`
}

// kindProbe reads just the discriminator of a polymorphic element.
type kindProbe struct {
	Type string `json:"type"`
}

// Parse decodes a wire payload into a Document. Every entity and
// annotation is materialized through its package constructor, so variant
// invariants hold on this path exactly as they do for programmatic
// construction: a payload carrying an invalid variant fails to parse.
//
// Parse stops at the first defect. For a complete violation inventory
// over an untrusted payload, use validate.Payload instead.
func Parse(data []byte) (*Document, error) {
	var env documentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("malformed document payload: %w", err)
	}

	pageUnits, err := unit.Parse(env.Page.Units)
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}

	// An absent sync status means the document predates sync bookkeeping;
	// it is local by definition. Any other unknown token is a defect.
	syncStatus := SyncLocal
	if env.SyncStatus != "" {
		syncStatus, err = ParseSyncStatus(env.SyncStatus)
		if err != nil {
			return nil, err
		}
	}

	layers := make([]Layer, len(env.Layers))
	for i, l := range env.Layers {
		layers[i] = Layer{ID: l.ID, Name: l.Name, Visible: l.Visible}
	}

	entities := make([]entity.Entity, len(env.Entities))
	for i, raw := range env.Entities {
		e, err := parseEntity(raw)
		if err != nil {
			return nil, fmt.Errorf("entities[%d]: %w", i, err)
		}
		entities[i] = e
	}

	annotations := make([]annot.Annotation, len(env.Annotations))
	for i, raw := range env.Annotations {
		a, err := parseAnnotation(raw)
		if err != nil {
			return nil, fmt.Errorf("annotations[%d]: %w", i, err)
		}
		annotations[i] = a
	}

	metadata := env.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}

	// Fields are preserved verbatim, including a blank document id: Parse
	// must reconstruct exactly what was serialized or round-trip hashing
	// breaks.
	return &Document{
		schemaVersion: env.SchemaVersion,
		id:            env.ID,
		name:          env.Name,
		page:          Page{Width: env.Page.Width, Height: env.Page.Height, Units: pageUnits},
		layers:        layers,
		entities:      entities,
		annotations:   annotations,
		metadata:      metadata,
		syncID:        stringOrEmpty(env.SyncID),
		syncStatus:    syncStatus,
		updatedAt:     env.UpdatedAt,
		version:       env.Version,
	}, nil
}

func parseEntity(raw json.RawMessage) (entity.Entity, error) {
	var probe kindProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("malformed entity: %w", err)
	}

	switch entity.Kind(probe.Type) {
	case entity.KindLine:
		var w wireSegment
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("malformed line: %w", err)
		}
		return entity.NewSegment(w.ID, stringOrEmpty(w.Layer), w.Start, w.End, decodeStyle(w.Style)), nil
	case entity.KindCircle:
		var w wireCircle
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("malformed circle: %w", err)
		}
		return entity.NewCircle(w.ID, stringOrEmpty(w.Layer), w.Center, w.Radius, decodeStyle(w.Style))
	case entity.KindPolyline:
		var w wirePolyline
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("malformed polyline: %w", err)
		}
		return entity.NewPolyline(w.ID, stringOrEmpty(w.Layer), w.Points, w.Closed, decodeStyle(w.Style))
	case entity.KindArc:
		var w wireArc
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("malformed arc: %w", err)
		}
		return entity.NewArc(w.ID, stringOrEmpty(w.Layer), w.Center, w.Radius, w.StartAngle, w.EndAngle)
	default:
		return nil, fmt.Errorf("unknown entity type %q", probe.Type)
	}
}

func parseAnnotation(raw json.RawMessage) (annot.Annotation, error) {
	var probe kindProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("malformed annotation: %w", err)
	}

	switch annot.Kind(probe.Type) {
	case annot.KindText:
		var w wireText
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("malformed text: %w", err)
		}
		return annot.NewText(w.ID, stringOrEmpty(w.TargetID), w.Position, w.Content, w.FontSize, w.Rotation), nil
	case annot.KindDimension:
		var w wireDimension
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("malformed dimension: %w", err)
		}
		units, err := unit.Parse(w.Units)
		if err != nil {
			return nil, err
		}
		return annot.NewDimension(w.ID, stringOrEmpty(w.TargetID), w.Value, units, w.Position)
	case annot.KindTag:
		var w wireTag
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("malformed tag: %w", err)
		}
		return annot.NewTag(w.ID, stringOrEmpty(w.TargetID), w.Label, stringOrEmpty(w.Category)), nil
	case annot.KindGroup:
		var w wireGroup
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("malformed group: %w", err)
		}
		return annot.NewGroup(w.ID, stringOrEmpty(w.TargetID), w.Name, w.MemberIDs)
	default:
		return nil, fmt.Errorf("unknown annotation type %q", probe.Type)
	}
}

func decodeStyle(w wireStyle) entity.Style {
	return entity.NewStyle(w.Color, w.Width, w.Dash)
}
