package baserule

import (
	"fmt"
	"go/token"
)

// RuleID is the stable identity diagnostics are reported under.
const RuleID = "callbase"

// messageFormat takes the overriding method's simple name, never the name
// of the method it shadows.
const messageFormat = "method %s must call the method it overrides"

// Stmt is an opaque statement handle. The rule never looks inside it, the
// value only travels from Call.Enclosing to Fragment.Reachability.
type Stmt any

// Method is the rule's read-only view of one logical method declaration.
type Method interface {
	// Name returns the simple name used in diagnostics.
	Name() string

	// Pos anchors diagnostics at the primary declaration of the method.
	Pos() token.Pos

	// IsOverride reports whether the declaration shadows another method.
	IsOverride() bool

	// Overridden resolves the shadowed method. Reports false when the
	// override link dangles even though IsOverride holds, which happens
	// after upstream edits or on ambiguous shadowing.
	Overridden() (Method, bool)

	// Abstract reports whether the declaration has no body to call.
	Abstract() bool

	// Marked reports whether the declaration carries the enforcement
	// marker.
	Marked() bool

	// Fragments returns every syntactic piece of the declaration, each
	// bound to its own semantic context.
	Fragments() []Fragment

	// Same reports symbol identity with another method.
	Same(Method) bool
}

// Fragment is one syntactic piece of a method declaration.
type Fragment interface {
	// Calls enumerates the call expressions of the fragment.
	Calls() []Call

	// Reachability classifies the entry of a statement of this fragment
	// within the fragment's control flow graph.
	Reachability(Stmt) Verdict
}

// Call is a single call expression with its target resolved in the
// enclosing fragment's semantic context.
type Call interface {
	// Target resolves the called method. Reports false for targets that
	// cannot be resolved and for targets that are not methods.
	Target() (Method, bool)

	// Enclosing returns the nearest statement containing the call.
	Enclosing() (Stmt, bool)
}

// Check runs the rule over a single method declaration. It returns at most
// one diagnostic no matter how many call sites the method has and leaves
// no side effects behind.
func Check(m Method) (Diagnostic, bool) {
	base, ok := trigger(m)
	if !ok {
		return Diagnostic{}, false
	}

	if !enforced(m) {
		return Diagnostic{}, false
	}

	if callsBase(m, base) {
		return Diagnostic{}, false
	}

	return Diagnostic{
		Rule:     RuleID,
		Severity: SeverityError,
		Message:  fmt.Sprintf(messageFormat, m.Name()),
		Pos:      m.Pos(),
	}, true
}

// trigger does the cheap symbol-only filtering and hands out the method to
// look calls for. Method bodies stay untouched here.
func trigger(m Method) (Method, bool) {
	if !m.IsOverride() {
		return nil, false
	}

	base, ok := m.Overridden()
	if !ok {
		// A dangling override link is somebody else's error to report.
		return nil, false
	}

	if base.Abstract() {
		return nil, false
	}

	return base, true
}

// enforced walks the override chain looking for the marker. The marker on
// any ancestor, the method itself included, enables the rule.
func enforced(m Method) bool {
	for cur := m; ; {
		if cur.Marked() {
			return true
		}

		if !cur.IsOverride() {
			return false
		}

		next, ok := cur.Overridden()
		if !ok {
			return false
		}

		cur = next
	}
}

// callsBase scans every fragment of m for a call to base sitting in a
// reachable statement. An indeterminate verdict counts as reachable.
func callsBase(m, base Method) bool {
	for _, frag := range m.Fragments() {
		for _, call := range frag.Calls() {
			target, ok := call.Target()
			if !ok {
				continue
			}

			if !target.Same(base) {
				continue
			}

			stmt, ok := call.Enclosing()
			if !ok {
				// Should not happen with a sane grammar.
				continue
			}

			if frag.Reachability(stmt) == VerdictUnreachable {
				continue
			}

			return true
		}
	}

	return false
}
