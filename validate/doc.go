// Package validate provides the violation taxonomy and the stateless
// validator that inspects drawing documents and raw wire payloads.
//
// # Violations
//
// Every defect is reported as a Violation value, never as a raised error:
//   - MissingField: a required field is absent
//   - InvalidValue: a field holds a value outside its constraint
//   - BrokenReference: an id names an entity or layer that does not exist
//   - Custom: everything else (schema version mismatch, cardinality
//     limits, degenerate geometry warnings, custom rule failures)
//
// Violations carry a dotted path locating the offending field, a severity
// (error, warning, info), and a rendered message. ERROR blocks a payload
// at the ingress gate; WARNING and INFO are advisory.
//
// # Validation
//
// Document walks a constructed document and returns the complete
// violation inventory in a fixed order: schema version, cardinality
// limits, layers, entities (identifiers, re-verified invariants,
// geometric sanity), annotations (identifiers, reference integrity), then
// any custom rules. Payload is the ingress entry point for untrusted
// bytes: parse failures and blocking violations come back as a *Error
// carrying the full list.
//
// # Custom rules
//
// NewRule compiles a CEL boolean expression evaluated against the
// canonical document map bound to the variable "doc":
//
//	rule, err := validate.NewRule("has-entities",
//		"size(doc.entities) > 0", validate.SeverityWarning)
//	if err != nil {
//		log.Fatal(err)
//	}
//	v := validate.New(validate.WithRules(rule))
//	violations := v.Document(doc)
//
// Rules follow the same contract as the built-in checks: a failed or
// unevaluable rule produces a violation, never a panic or error return.
package validate
