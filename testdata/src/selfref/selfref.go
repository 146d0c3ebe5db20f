package selfref

type Loop struct {
	*Loop
}

// Promotes its own declaration, shadows nothing. The marker has nobody
// to bind.
//
//callbase:require
func (l *Loop) Close() {} // want Close:"callbase:require"

type Yin struct {
	*Yang
}

func (y *Yin) Close() {}

type Yang struct {
	*Yin
}

// Yin and Yang shadow each other. The chain has no marker to find and,
// more to the point, the analysis has to come back from the round trip.
func (g *Yang) Close() {}
