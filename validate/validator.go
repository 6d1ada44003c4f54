package validate

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/sketchdoc/sdk/annot"
	"github.com/sketchdoc/sdk/document"
	"github.com/sketchdoc/sdk/entity"
	"github.com/sketchdoc/sdk/geom"
)

// zeroLengthTolerance is the length below which a segment is reported
// as degenerate.
const zeroLengthTolerance = 1e-6

// Validator runs the fixed sequence of checks against documents. The
// zero-configuration validator from New applies the default limits and
// no custom rules.
type Validator struct {
	limits Limits
	rules  []*Rule
}

// Option configures a Validator.
type Option func(*Validator)

// WithLimits overrides the cardinality limits. Unset fields fall back
// to the defaults.
func WithLimits(limits Limits) Option {
	return func(v *Validator) { v.limits = limits.withDefaults() }
}

// WithRules appends custom rules, evaluated after the built-in checks
// in the order given.
func WithRules(rules ...*Rule) Option {
	return func(v *Validator) { v.rules = append(v.rules, rules...) }
}

// New builds a validator.
func New(opts ...Option) *Validator {
	v := &Validator{limits: DefaultLimits()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Document runs every check against doc and returns the violations
// found, in check order. An empty slice means the document is valid.
func (v *Validator) Document(doc *document.Document) []Violation {
	if doc == nil {
		return []Violation{Custom("", SeverityError, "document is nil")}
	}

	ins := inspect(doc)

	var violations []Violation
	violations = append(violations, v.checkSchemaVersion(ins)...)
	violations = append(violations, v.checkCardinality(ins)...)
	violations = append(violations, v.checkLayers(ins)...)
	violations = append(violations, v.checkEntities(ins)...)
	violations = append(violations, v.checkAnnotations(ins)...)
	violations = append(violations, v.checkRules(ins)...)
	return violations
}

// Payload parses data and validates the result. Parse failures and
// blocking violations reject the payload with an *Error; warnings alone
// do not block. Callers that want the warnings of an accepted payload
// validate the returned document with Document.
func (v *Validator) Payload(data []byte) (*document.Document, error) {
	doc, err := document.Parse(data)
	if err != nil {
		violation := Custom("", SeverityError, fmt.Sprintf("failed to parse payload: %v", err))
		return nil, &Error{Violations: []Violation{violation}}
	}

	violations := v.Document(doc)
	if HasBlocking(violations) {
		return nil, &Error{Violations: violations}
	}
	return doc, nil
}

// Document validates doc with the default validator.
func Document(doc *document.Document) []Violation {
	return New().Document(doc)
}

// Payload parses and validates raw bytes with the default validator.
func Payload(data []byte) (*document.Document, error) {
	return New().Payload(data)
}

// inspection snapshots a document's collections once per validation so
// the per-check passes share one copy.
type inspection struct {
	doc         *document.Document
	layers      []document.Layer
	entities    []entity.Entity
	annotations []annot.Annotation
	layerIDs    map[string]bool
	entityIDs   map[string]bool
}

func inspect(doc *document.Document) *inspection {
	ins := &inspection{
		doc:         doc,
		layers:      doc.Layers(),
		entities:    doc.Entities(),
		annotations: doc.Annotations(),
	}
	ins.layerIDs = make(map[string]bool, len(ins.layers))
	for _, layer := range ins.layers {
		if layer.ID != "" {
			ins.layerIDs[layer.ID] = true
		}
	}
	ins.entityIDs = make(map[string]bool, len(ins.entities))
	for _, e := range ins.entities {
		if e.ID() != "" {
			ins.entityIDs[e.ID()] = true
		}
	}
	return ins
}

func (v *Validator) checkSchemaVersion(ins *inspection) []Violation {
	version := ins.doc.SchemaVersion()
	if version == document.CurrentSchemaVersion {
		return nil
	}
	return []Violation{Custom("schema_version", SeverityError,
		fmt.Sprintf("unsupported schema version %d, this build supports %d", version, document.CurrentSchemaVersion))}
}

func (v *Validator) checkCardinality(ins *inspection) []Violation {
	var violations []Violation
	if n := len(ins.entities); n > v.limits.MaxEntities {
		violations = append(violations, Custom("entities", SeverityError,
			fmt.Sprintf("document has %d entities, limit is %d", n, v.limits.MaxEntities)))
	}
	if n := len(ins.annotations); n > v.limits.MaxAnnotations {
		violations = append(violations, Custom("annotations", SeverityError,
			fmt.Sprintf("document has %d annotations, limit is %d", n, v.limits.MaxAnnotations)))
	}
	return violations
}

func (v *Validator) checkLayers(ins *inspection) []Violation {
	var violations []Violation
	seen := make(map[string]bool, len(ins.layers))
	for i, layer := range ins.layers {
		path := fmt.Sprintf("layers[%d]", i)
		if layer.ID == "" {
			violations = append(violations, InvalidValue(path, "id", layer.ID, "must not be blank"))
			continue
		}
		if seen[layer.ID] {
			violations = append(violations, InvalidValue(path, "id", layer.ID, "must be unique"))
		}
		seen[layer.ID] = true
	}
	return violations
}

func (v *Validator) checkEntities(ins *inspection) []Violation {
	var violations []Violation
	seen := make(map[string]bool, len(ins.entities))
	for i, e := range ins.entities {
		path := fmt.Sprintf("entities[%d]", i)

		id := e.ID()
		switch {
		case id == "":
			violations = append(violations, InvalidValue(path, "id", id, "must not be blank"))
		case seen[id]:
			violations = append(violations, InvalidValue(path, "id", id, "must be unique"))
		default:
			seen[id] = true
		}

		if layer := e.Layer(); layer != "" && !ins.layerIDs[layer] {
			violations = append(violations, BrokenReference(path, layer, TargetLayer))
		}

		violations = append(violations, checkEntityGeometry(path, e)...)
	}
	return violations
}

// checkEntityGeometry re-verifies per-variant invariants and the
// finiteness of every coordinate. Invariant checks report once per
// field; a NaN radius is an invalid radius, not also a non-finite one.
func checkEntityGeometry(path string, e entity.Entity) []Violation {
	var violations []Violation
	switch e := e.(type) {
	case *entity.Segment:
		violations = append(violations, checkPointFinite(path+".start", e.Start())...)
		violations = append(violations, checkPointFinite(path+".end", e.End())...)
		if e.Length() <= zeroLengthTolerance {
			violations = append(violations, Custom(path, SeverityWarning,
				fmt.Sprintf("segment %q has zero length", e.ID())))
		}
	case *entity.Circle:
		if radius := e.Radius(); !finite(radius) || radius <= 0 {
			violations = append(violations, InvalidValue(path, "radius", radius, "must be positive and finite"))
		}
		violations = append(violations, checkPointFinite(path+".center", e.Center())...)
	case *entity.Polyline:
		points := e.Points()
		if len(points) < 2 {
			violations = append(violations, InvalidValue(path, "points", len(points), "at least 2 points required"))
		}
		for j, p := range points {
			violations = append(violations, checkPointFinite(fmt.Sprintf("%s.points[%d]", path, j), p)...)
		}
	case *entity.Arc:
		if radius := e.Radius(); !finite(radius) || radius <= 0 {
			violations = append(violations, InvalidValue(path, "radius", radius, "must be positive and finite"))
		}
		violations = append(violations, checkPointFinite(path+".center", e.Center())...)
		if !finite(e.StartAngle()) {
			violations = append(violations, InvalidValue(path, "start_angle", e.StartAngle(), "must be finite"))
		}
		if !finite(e.EndAngle()) {
			violations = append(violations, InvalidValue(path, "end_angle", e.EndAngle(), "must be finite"))
		}
	}
	return violations
}

func (v *Validator) checkAnnotations(ins *inspection) []Violation {
	var violations []Violation
	seen := make(map[string]bool, len(ins.annotations))
	for i, a := range ins.annotations {
		path := fmt.Sprintf("annotations[%d]", i)

		id := a.ID()
		switch {
		case id == "":
			violations = append(violations, InvalidValue(path, "id", id, "must not be blank"))
		case seen[id]:
			violations = append(violations, InvalidValue(path, "id", id, "must be unique"))
		default:
			seen[id] = true
		}

		switch a := a.(type) {
		case *annot.Text:
			violations = append(violations, checkOptionalTarget(path, a.TargetID(), ins)...)
		case *annot.Dimension:
			violations = append(violations, checkRequiredTarget(path, a.TargetID(), ins)...)
			if value := a.Value(); !(value >= 0) {
				violations = append(violations, InvalidValue(path, "value", value, "must be non-negative"))
			}
		case *annot.Tag:
			violations = append(violations, checkRequiredTarget(path, a.TargetID(), ins)...)
		case *annot.Group:
			violations = append(violations, checkOptionalTarget(path, a.TargetID(), ins)...)
			members := a.MemberIDs()
			if len(members) < 1 {
				violations = append(violations, InvalidValue(path, "member_ids", len(members), "at least 1 member required"))
			}
			for j, member := range members {
				memberPath := fmt.Sprintf("%s.member_ids[%d]", path, j)
				if member == "" {
					violations = append(violations, InvalidValue(memberPath, "member_ids", member, "must not be blank"))
					continue
				}
				if !ins.entityIDs[member] {
					violations = append(violations, BrokenReference(memberPath, member, TargetEntity))
				}
			}
		}
	}
	return violations
}

// checkRequiredTarget enforces a target reference that must be present
// and resolve to an entity.
func checkRequiredTarget(path, target string, ins *inspection) []Violation {
	if target == "" {
		return []Violation{MissingField(path, "target_id")}
	}
	if !ins.entityIDs[target] {
		return []Violation{BrokenReference(path, target, TargetEntity)}
	}
	return nil
}

// checkOptionalTarget enforces a target reference that may be absent
// but must resolve when present.
func checkOptionalTarget(path, target string, ins *inspection) []Violation {
	if target != "" && !ins.entityIDs[target] {
		return []Violation{BrokenReference(path, target, TargetEntity)}
	}
	return nil
}

func (v *Validator) checkRules(ins *inspection) []Violation {
	if len(v.rules) == 0 {
		return nil
	}

	doc, err := canonicalMap(ins.doc)
	if err != nil {
		return []Violation{Custom("", SeverityWarning, fmt.Sprintf("custom rules skipped: %v", err))}
	}

	var violations []Violation
	for _, rule := range v.rules {
		if violation := rule.eval(doc); violation != nil {
			violations = append(violations, *violation)
		}
	}
	return violations
}

// canonicalMap decodes the document's canonical form into the generic
// structure custom rules evaluate against.
func canonicalMap(doc *document.Document) (map[string]any, error) {
	data, err := doc.CanonicalJSON()
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func checkPointFinite(path string, p geom.Point) []Violation {
	var violations []Violation
	if !finite(p.X) {
		violations = append(violations, InvalidValue(path+".x", "x", p.X, "must be finite"))
	}
	if !finite(p.Y) {
		violations = append(violations, InvalidValue(path+".y", "y", p.Y, "must be finite"))
	}
	return violations
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
