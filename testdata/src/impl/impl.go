package impl

import "base"

type Worker struct {
	base.Service
}

// The marker comes from another package via an exported fact.
func (w *Worker) Stop() {} // want `method Stop must call the method it overrides`

type Politer struct {
	base.Service
}

func (p *Politer) Stop() {
	p.Service.Stop()
}
