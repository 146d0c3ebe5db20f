package gofront

import (
	"go/ast"

	"golang.org/x/tools/go/cfg"

	"github.com/sirkon/callbase/internal/baserule"
)

// Reachability classifies the entry of stmt within the method's control
// flow graph. The graph is requested lazily, only once a candidate call
// survived target matching.
func (f fragment) Reachability(s baserule.Stmt) baserule.Verdict {
	stmt, ok := s.(ast.Stmt)
	if !ok {
		return baserule.VerdictIndeterminate
	}

	g := f.fe.cfgs.FuncDecl(f.decl)
	if g == nil || len(g.Blocks) == 0 {
		return baserule.VerdictIndeterminate
	}

	home := blockOf(g, stmt)
	if home == nil {
		// Condition expressions and nested function literal bodies own no
		// block here. Cannot classify those.
		return baserule.VerdictIndeterminate
	}

	if reachableFromEntry(g, home) {
		return baserule.VerdictReachable
	}

	return baserule.VerdictUnreachable
}

// blockOf finds the basic block listing stmt among its nodes.
func blockOf(g *cfg.CFG, stmt ast.Stmt) *cfg.Block {
	for _, b := range g.Blocks {
		for _, n := range b.Nodes {
			if n == ast.Node(stmt) {
				return b
			}
		}
	}

	return nil
}

// reachableFromEntry walks successor edges starting at the entry block.
func reachableFromEntry(g *cfg.CFG, target *cfg.Block) bool {
	seen := make(map[*cfg.Block]bool, len(g.Blocks))
	queue := []*cfg.Block{g.Blocks[0]}

	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]

		if b == target {
			return true
		}

		if seen[b] {
			continue
		}
		seen[b] = true

		queue = append(queue, b.Succs...)
	}

	return false
}
