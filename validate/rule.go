package validate

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Rule is a compiled CEL predicate evaluated against the canonical form
// of a document. The expression sees one variable, doc, holding the
// canonical JSON structure as maps and lists. A rule passes when the
// expression evaluates to true.
type Rule struct {
	name     string
	severity Severity
	program  cel.Program
}

// NewRule compiles expression into a rule. The severity decides how a
// failing document is reported; compile errors are returned here so a
// bad expression never reaches validation.
func NewRule(name string, severity Severity, expression string) (*Rule, error) {
	if name == "" {
		return nil, fmt.Errorf("rule name must not be blank")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity: %q", severity)
	}

	env, err := cel.NewEnv(cel.Variable("doc", cel.DynType))
	if err != nil {
		return nil, fmt.Errorf("failed to create rule environment: %w", err)
	}

	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("failed to compile rule %q: %w", name, issues.Err())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to build rule %q: %w", name, err)
	}

	return &Rule{name: name, severity: severity, program: program}, nil
}

// Name returns the rule's name.
func (r *Rule) Name() string { return r.name }

// Severity returns the severity a failing document is reported at.
func (r *Rule) Severity() Severity { return r.severity }

// eval runs the rule against the canonical document structure. A nil
// result means the rule passed. Evaluation failures and non-boolean
// results downgrade to warnings so one bad rule cannot block a payload.
func (r *Rule) eval(doc map[string]any) *Violation {
	out, _, err := r.program.Eval(map[string]any{"doc": doc})
	if err != nil {
		v := Custom("", SeverityWarning, fmt.Sprintf("rule %q could not evaluate: %v", r.name, err))
		return &v
	}

	passed, ok := out.Value().(bool)
	if !ok {
		v := Custom("", SeverityWarning, fmt.Sprintf("rule %q did not produce a boolean", r.name))
		return &v
	}
	if passed {
		return nil
	}

	v := Custom("", r.severity, fmt.Sprintf("rule %q failed", r.name))
	return &v
}
