package document

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/sketchdoc/sdk/annot"
	"github.com/sketchdoc/sdk/entity"
	"github.com/sketchdoc/sdk/round"
)

// CanonicalJSON returns the document's canonical wire form: collections
// sorted by id, metadata keys sorted, all floats rounded to four
// decimals, 2-space indent, "\n" line breaks, explicit nulls for absent
// optionals. The bytes are identical for semantically equal documents
// regardless of collection insertion order, platform, or architecture.
//
// A document holding non-finite values cannot be represented in JSON and
// returns an error; run the validator first to catch those.
func (d *Document) CanonicalJSON() ([]byte, error) {
	out, err := json.MarshalIndent(d.canonicalWire(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode canonical JSON: %w", err)
	}
	return out, nil
}

// canonicalWire projects the document onto its wire representation with
// every canonicalization rule applied.
func (d *Document) canonicalWire() wireDocument {
	layers := make([]wireLayer, len(d.layers))
	for i, l := range d.layers {
		layers[i] = wireLayer{ID: l.ID, Name: l.Name, Visible: l.Visible}
	}
	sort.SliceStable(layers, func(i, j int) bool { return layers[i].ID < layers[j].ID })

	entities := make([]entity.Entity, len(d.entities))
	copy(entities, d.entities)
	sort.SliceStable(entities, func(i, j int) bool { return entities[i].ID() < entities[j].ID() })
	wireEntities := make([]any, len(entities))
	for i, e := range entities {
		wireEntities[i] = encodeEntity(e)
	}

	annotations := make([]annot.Annotation, len(d.annotations))
	copy(annotations, d.annotations)
	sort.SliceStable(annotations, func(i, j int) bool { return annotations[i].ID() < annotations[j].ID() })
	wireAnnotations := make([]any, len(annotations))
	for i, a := range annotations {
		wireAnnotations[i] = encodeAnnotation(a)
	}

	metadata := make(map[string]string, len(d.metadata))
	for k, v := range d.metadata {
		metadata[k] = v
	}

	return wireDocument{
		SchemaVersion: d.schemaVersion,
		ID:            d.id,
		Name:          d.name,
		Page: wirePage{
			Width:  round.Coord(d.page.Width),
			Height: round.Coord(d.page.Height),
			Units:  d.page.Units.String(),
		},
		Layers:      layers,
		Entities:    wireEntities,
		Annotations: wireAnnotations,
		Metadata:    metadata,
		SyncID:      nullable(d.syncID),
		SyncStatus:  d.syncStatus.String(),
		UpdatedAt:   d.updatedAt,
		Version:     d.version,
	}
}

func encodeEntity(e entity.Entity) any {
	switch e := e.(type) {
	case *entity.Segment:
		return wireSegment{
			Type:  entity.KindLine.String(),
			ID:    e.ID(),
			Layer: nullable(e.Layer()),
			Start: e.Start().Canonical(),
			End:   e.End().Canonical(),
			Style: encodeStyle(e.Style()),
		}
	case *entity.Circle:
		return wireCircle{
			Type:   entity.KindCircle.String(),
			ID:     e.ID(),
			Layer:  nullable(e.Layer()),
			Center: e.Center().Canonical(),
			Radius: round.Coord(e.Radius()),
			Style:  encodeStyle(e.Style()),
		}
	case *entity.Polyline:
		points := e.Points()
		for i, p := range points {
			points[i] = p.Canonical()
		}
		return wirePolyline{
			Type:   entity.KindPolyline.String(),
			ID:     e.ID(),
			Layer:  nullable(e.Layer()),
			Points: points,
			Closed: e.Closed(),
			Style:  encodeStyle(e.Style()),
		}
	case *entity.Arc:
		return wireArc{
			Type:       entity.KindArc.String(),
			ID:         e.ID(),
			Layer:      nullable(e.Layer()),
			Center:     e.Center().Canonical(),
			Radius:     round.Coord(e.Radius()),
			StartAngle: round.Coord(e.StartAngle()),
			EndAngle:   round.Coord(e.EndAngle()),
		}
	}
	// Entity is sealed; no other variants exist.
	return nil
}

func encodeAnnotation(a annot.Annotation) any {
	switch a := a.(type) {
	case *annot.Text:
		return wireText{
			Type:     annot.KindText.String(),
			ID:       a.ID(),
			TargetID: nullable(a.TargetID()),
			Position: a.Position().Canonical(),
			Content:  a.Content(),
			FontSize: round.Coord(a.FontSize()),
			Rotation: round.Coord(a.Rotation()),
		}
	case *annot.Dimension:
		return wireDimension{
			Type:     annot.KindDimension.String(),
			ID:       a.ID(),
			TargetID: nullable(a.TargetID()),
			Value:    round.Coord(a.Value()),
			Units:    a.Units().String(),
			Position: a.Position().Canonical(),
		}
	case *annot.Tag:
		return wireTag{
			Type:     annot.KindTag.String(),
			ID:       a.ID(),
			TargetID: nullable(a.TargetID()),
			Label:    a.Label(),
			Category: nullable(a.Category()),
		}
	case *annot.Group:
		return wireGroup{
			Type:      annot.KindGroup.String(),
			ID:        a.ID(),
			TargetID:  nullable(a.TargetID()),
			Name:      a.Name(),
			MemberIDs: a.MemberIDs(),
		}
	}
	// Annotation is sealed; no other variants exist.
	return nil
}

// encodeStyle rounds the width and dash pattern; Dash already hands back
// a private copy, so rounding in place is safe.
func encodeStyle(s entity.Style) wireStyle {
	w := wireStyle{Color: s.Color(), Width: round.Coord(s.Width())}
	if dash := s.Dash(); dash != nil {
		for i, v := range dash {
			dash[i] = round.Coord(v)
		}
		w.Dash = dash
	}
	return w
}
