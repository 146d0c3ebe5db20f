package baserule

import (
	"fmt"
	"go/token"
)

// Severity tells the driver how to treat a diagnostic. The rule only ever
// emits errors, the type exists to keep the record self-describing.
type Severity int

const (
	severityInvalid Severity = iota

	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("invalid(%d)", s)
	}
}

// Diagnostic is a single immutable finding of the rule.
type Diagnostic struct {
	Rule     string
	Severity Severity
	Message  string
	Pos      token.Pos
}
