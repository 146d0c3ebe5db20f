// Package gofront binds the base-call rule to Go sources.
//
// Overriding here means a struct method shadowing a method promoted from an
// embedded field. The enforcement marker is a directive comment on the base
// method declaration, reachability verdicts come from the control flow
// graphs of the ctrlflow analysis pass.
package gofront

import (
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/ctrlflow"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/callbase/internal/baserule"
)

// RequiredFact marks a method whose overrides are required to call it.
// It is exported as an object fact, so the marker set in one package is
// visible to overrides living in packages depending on it.
type RequiredFact struct{}

func (*RequiredFact) AFact() {}

func (*RequiredFact) String() string { return "callbase:require" }

// Frontend answers the rule's semantic queries for one analysis pass.
// It holds nothing but the pass-local declaration index, so instances are
// dropped together with their pass.
type Frontend struct {
	pass  *analysis.Pass
	cfgs  *ctrlflow.CFGs
	decls map[*types.Func]*ast.FuncDecl
}

// New indexes the method declarations of the package under analysis and
// exports marker facts for every declaration carrying the marker directive.
func New(pass *analysis.Pass, pector *inspector.Inspector, cfgs *ctrlflow.CFGs, marker string) *Frontend {
	fe := &Frontend{
		pass:  pass,
		cfgs:  cfgs,
		decls: map[*types.Func]*ast.FuncDecl{},
	}

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
	}

	pector.Preorder(nodeFilter, func(node ast.Node) {
		decl := node.(*ast.FuncDecl)
		if decl.Recv == nil {
			return
		}

		fn, ok := pass.TypesInfo.Defs[decl.Name].(*types.Func)
		if !ok {
			return
		}

		fe.decls[fn] = decl
		if hasDirective(decl.Doc, marker) {
			pass.ExportObjectFact(fn, &RequiredFact{})
		}
	})

	return fe
}

// MethodOf returns the rule's view of a declared method.
func (fe *Frontend) MethodOf(decl *ast.FuncDecl) (baserule.Method, bool) {
	fn, ok := fe.pass.TypesInfo.Defs[decl.Name].(*types.Func)
	if !ok {
		return nil, false
	}

	return method{fe: fe, fn: fn}, true
}

// hasDirective looks for a //<marker> line within a doc comment.
func hasDirective(doc *ast.CommentGroup, marker string) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		text := strings.TrimPrefix(c.Text, "//")
		if strings.TrimSpace(text) == marker {
			return true
		}
	}

	return false
}

// method adapts *types.Func to baserule.Method.
//
// path lists the ancestors already walked through Overridden calls. The
// rule core relies on override chains being finite, while mutual embedding
// can close the shadowing relation into a loop. The path cuts such loops,
// presenting a back edge as a dangling link.
type method struct {
	fe   *Frontend
	fn   *types.Func
	path []*types.Func
}

func (m method) Name() string { return m.fn.Name() }

// Pos prefers the declaration name position when the method belongs to the
// package under analysis.
func (m method) Pos() token.Pos {
	if decl, ok := m.fe.decls[m.fn]; ok {
		return decl.Name.Pos()
	}

	return m.fn.Pos()
}

func (m method) IsOverride() bool {
	return len(shadowedBy(m.fn)) > 0
}

func (m method) Overridden() (baserule.Method, bool) {
	cands := shadowedBy(m.fn)
	if len(cands) != 1 {
		// Nothing shadowed, or two distinct methods promoted from
		// different embedded fields. Either way there is no single
		// implementation to demand a call to.
		return nil, false
	}

	base := cands[0]
	if slices.Contains(m.path, base) {
		// Mutual embedding closed the chain onto itself.
		return nil, false
	}

	return method{
		fe:   m.fe,
		fn:   base,
		path: append(slices.Clone(m.path), m.fn),
	}, true
}

// Abstract reports whether the method comes from an interface, meaning
// there is no body to call.
func (m method) Abstract() bool {
	recv := m.fn.Type().(*types.Signature).Recv()
	return recv != nil && types.IsInterface(recv.Type())
}

func (m method) Marked() bool {
	return m.fe.pass.ImportObjectFact(m.fn, new(RequiredFact))
}

func (m method) Fragments() []baserule.Fragment {
	decl, ok := m.fe.decls[m.fn]
	if !ok || decl.Body == nil {
		return nil
	}

	// A Go method has exactly one declaration.
	return []baserule.Fragment{fragment{fe: m.fe, decl: decl}}
}

func (m method) Same(other baserule.Method) bool {
	o, ok := other.(method)
	return ok && o.fn == m.fn
}
