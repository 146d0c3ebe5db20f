// Package baserule implements the "must call the overridden implementation"
// rule over an abstract semantic front end.
//
// The rule fires on a method that shadows another one when the shadowed
// method, or any method further up the override chain, carries the
// enforcement marker, and no reachable statement of the shadowing method
// calls the shadowed implementation.
//
// The work splits into three stages, each one gating the next:
//
//   - Trigger filter
//     Symbol-only checks. Non-overrides, dangling override links and
//     abstract bases leave here, without ever touching a method body.
//
//   - Marker resolution
//     A walk up the override chain. The marker on any ancestor enables
//     the rule for every override below it, so a base declares the
//     policy once and every descendant inherits it.
//
//   - Call scan
//     Enumerates call expressions across every syntactic fragment of the
//     declaration, keeps the ones resolving to the exact base symbol and
//     asks the fragment's control flow graph whether their enclosing
//     statements can be reached. One reachable call satisfies the rule.
//
// Reachability is a tri-state verdict. An indeterminate verdict counts as
// satisfying: the rule prefers a missed detection over a wrong accusation
// on code shapes the control flow analysis cannot classify.
//
// Everything here is a pure function of its inputs. No state survives a
// Check call, which makes concurrent invocation over independent methods
// safe without any synchronization.
package baserule
