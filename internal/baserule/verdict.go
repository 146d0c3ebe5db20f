package baserule

import (
	"fmt"
)

// Verdict classifies whether a statement's entry can be reached from its
// method's entry.
type Verdict int

const (
	verdictInvalid Verdict = iota

	// VerdictReachable means some execution path reaches the statement.
	VerdictReachable

	// VerdictUnreachable means no execution path reaches the statement.
	VerdictUnreachable

	// VerdictIndeterminate means the control flow analysis could not
	// classify the statement.
	VerdictIndeterminate
)

var verdictValueMap = map[Verdict]string{
	VerdictReachable:     "reachable",
	VerdictUnreachable:   "unreachable",
	VerdictIndeterminate: "indeterminate",
}

func (v Verdict) String() string {
	s, ok := verdictValueMap[v]
	if !ok {
		return fmt.Sprintf("invalid(%d)", v)
	}

	return s
}
