package basic

type Conn struct{}

//callbase:require
func (c *Conn) Close() {} // want Close:"callbase:require"

func (c *Conn) Ping() {}

type loggedConn struct {
	Conn
}

// Calls the shadowed implementation. Fine.
func (l *loggedConn) Close() {
	l.Conn.Close()
}

type silentConn struct {
	Conn
}

func (s *silentConn) Close() {} // want `method Close must call the method it overrides`

type guardedConn struct {
	Conn
	closed bool
}

// The call is conditional yet reachable. Fine.
func (g *guardedConn) Close() {
	if !g.closed {
		g.Conn.Close()
	}
}

type deadConn struct {
	Conn
}

func (d *deadConn) Close() { // want `method Close must call the method it overrides`
	return
	d.Conn.Close()
}

type wrongConn struct {
	Conn
}

// Calls a method of the base type, just not the shadowed one.
func (w *wrongConn) Close() { // want `method Close must call the method it overrides`
	w.Conn.Ping()
}

type freeConn struct {
	Conn
}

// Ping carries no marker anywhere, shadowing it is unrestricted.
func (f *freeConn) Ping() {}

type plain struct{}

// Not an override at all.
func (p *plain) Close() {}

type Closer interface {
	Close()
}

type wrapped struct {
	Closer
}

// Shadows an interface method. There is no implementation to call.
func (w *wrapped) Close() {}

type A struct{}

//callbase:require
func (a *A) Shut() {} // want Shut:"callbase:require"

type B struct{}

//callbase:require
func (b *B) Shut() {} // want Shut:"callbase:require"

type both struct {
	A
	B
}

// Two distinct shadowed candidates, nothing definite to demand.
func (x *both) Shut() {}
