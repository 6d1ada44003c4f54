package validate

import (
	"fmt"
	"strings"
)

// Error rejects a payload that failed validation. It carries every
// violation found, not only the blocking ones, so callers can surface
// warnings alongside the rejection.
type Error struct {
	// Violations holds everything the validator found, in check order.
	Violations []Violation
}

// Error implements the error interface. The message lists the blocking
// violation count and the first blocking message.
func (e *Error) Error() string {
	blocking := 0
	first := ""
	for _, v := range e.Violations {
		if !v.IsBlocking() {
			continue
		}
		if blocking == 0 {
			first = v.String()
		}
		blocking++
	}
	switch blocking {
	case 0:
		return "document is invalid"
	case 1:
		return fmt.Sprintf("document is invalid: %s", first)
	default:
		return fmt.Sprintf("document is invalid: %s (and %d more)", first, blocking-1)
	}
}

// Blocking returns the subset of violations with ERROR severity.
func (e *Error) Blocking() []Violation {
	var out []Violation
	for _, v := range e.Violations {
		if v.IsBlocking() {
			out = append(out, v)
		}
	}
	return out
}

// Summary renders every violation, one per line.
func (e *Error) Summary() string {
	lines := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		lines = append(lines, v.String())
	}
	return strings.Join(lines, "\n")
}
