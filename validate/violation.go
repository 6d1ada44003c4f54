package validate

import (
	"fmt"
	"strconv"
)

// Kind categorizes a violation.
type Kind string

const (
	// KindMissingField indicates a required field is absent.
	KindMissingField Kind = "missing_field"

	// KindInvalidValue indicates a field holds a value outside its
	// constraint.
	KindInvalidValue Kind = "invalid_value"

	// KindBrokenReference indicates an id that names a nonexistent
	// target.
	KindBrokenReference Kind = "broken_reference"

	// KindCustom covers defects outside the structural kinds, such as
	// schema version mismatches and cardinality limits.
	KindCustom Kind = "custom"
)

// Reference target types named by BrokenReference violations.
const (
	// TargetEntity marks references that must resolve to an entity id.
	TargetEntity = "Entity"

	// TargetLayer marks references that must resolve to a layer id.
	TargetLayer = "Layer"
)

// Violation is one defect found during validation. Violations are plain
// serializable data; the validator never raises.
type Violation struct {
	// Kind categorizes the defect.
	Kind Kind `json:"kind"`

	// Path locates the offending field in dotted/indexed form, e.g.
	// "entities[2].start.x". Empty means the document as a whole.
	Path string `json:"path"`

	// Severity is the defect's severity. Only SeverityError blocks a
	// payload.
	Severity Severity `json:"severity"`

	// Message is the rendered human-readable description.
	Message string `json:"message"`

	// Field is the offending field name, for missing-field and
	// invalid-value violations.
	Field string `json:"field,omitempty"`

	// Value is the rendered offending value, for invalid-value
	// violations.
	Value string `json:"value,omitempty"`

	// Constraint describes the violated constraint, for invalid-value
	// violations.
	Constraint string `json:"constraint,omitempty"`

	// ReferenceID is the dangling id, for broken-reference violations.
	ReferenceID string `json:"reference_id,omitempty"`

	// TargetType names what the reference should have resolved to, for
	// broken-reference violations.
	TargetType string `json:"target_type,omitempty"`
}

// MissingField reports a required field absent at path.
func MissingField(path, field string) Violation {
	return Violation{
		Kind:     KindMissingField,
		Path:     path,
		Severity: SeverityError,
		Field:    field,
		Message:  fmt.Sprintf("required field %q is missing", field),
	}
}

// InvalidValue reports a field whose value violates a constraint.
func InvalidValue(path, field string, value any, constraint string) Violation {
	return Violation{
		Kind:       KindInvalidValue,
		Path:       path,
		Severity:   SeverityError,
		Field:      field,
		Value:      fmt.Sprintf("%v", value),
		Constraint: constraint,
		Message:    fmt.Sprintf("field %q is invalid: %s (got %s)", field, constraint, formatValue(value)),
	}
}

// BrokenReference reports an id that resolves to nothing of the target
// type.
func BrokenReference(path, referenceID, targetType string) Violation {
	return Violation{
		Kind:        KindBrokenReference,
		Path:        path,
		Severity:    SeverityError,
		ReferenceID: referenceID,
		TargetType:  targetType,
		Message:     fmt.Sprintf("reference %q does not match any %s id", referenceID, targetType),
	}
}

// Custom reports a defect outside the structural kinds at the given
// severity.
func Custom(path string, severity Severity, message string) Violation {
	return Violation{
		Kind:     KindCustom,
		Path:     path,
		Severity: severity,
		Message:  message,
	}
}

// IsBlocking reports whether the violation's severity rejects a payload.
func (v Violation) IsBlocking() bool {
	return v.Severity == SeverityError
}

// String renders the violation as "[severity] path: message".
func (v Violation) String() string {
	if v.Path == "" {
		return fmt.Sprintf("[%s] %s", v.Severity, v.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", v.Severity, v.Path, v.Message)
}

// HasBlocking reports whether any violation in the list carries ERROR
// severity.
func HasBlocking(violations []Violation) bool {
	for _, v := range violations {
		if v.IsBlocking() {
			return true
		}
	}
	return false
}

// formatValue renders a value for violation messages, quoting strings so
// blank values stay visible.
func formatValue(value any) string {
	if s, ok := value.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", value)
}
