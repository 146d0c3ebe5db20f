package chain

type Root struct{}

//callbase:require
func (r *Root) Shutdown() {} // want Shutdown:"callbase:require"

type Mid struct {
	Root
}

// Marked transitively via Root and calls its own base. Fine.
func (m *Mid) Shutdown() {
	m.Root.Shutdown()
}

type Leaf struct {
	Mid
}

func (l *Leaf) Shutdown() {} // want `method Shutdown must call the method it overrides`

type Skipper struct {
	Mid
}

// Calls the grandparent implementation instead of the one it shadows.
// Symbol identity is exact, Mid.Shutdown is the one demanded here.
func (s *Skipper) Shutdown() { // want `method Shutdown must call the method it overrides`
	s.Mid.Root.Shutdown()
}

type Good struct {
	Mid
}

func (g *Good) Shutdown() {
	g.Mid.Shutdown()
}
