// Package callbase implements a static analysis rule demanding overriding
// methods to call the implementation they shadow.
//
// # Overview
//
// Go renders overriding as struct embedding: a method declared on the
// outer type shadows the one promoted from an embedded field. Some base
// implementations are not optional though. A Close releasing resources, a
// Shutdown flushing buffers — skipping them in an override is a silent
// leak. The rule makes such contracts checkable:
//
//	type Conn struct{}
//
//	//callbase:require
//	func (c *Conn) Close() {}
//
//	type tracedConn struct {
//		Conn
//	}
//
//	func (t *tracedConn) Close() { // callbase: method Close must call the method it overrides
//		t.log("closing")
//	}
//
// The fix:
//
//	func (t *tracedConn) Close() {
//		t.log("closing")
//		t.Conn.Close()
//	}
//
// The marker is inherited: marking a method once applies the rule to every
// override below it, across any number of embedding levels and across
// package boundaries.
//
// A call counts as long as some execution path can reach it. A call behind
// a condition passes, a call stranded after an unconditional return does
// not. When the control flow analysis cannot classify a call site the rule
// stays silent rather than risk a false accusation.
package callbase
