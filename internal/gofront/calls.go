package gofront

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"

	"github.com/sirkon/callbase/internal/baserule"
)

// fragment is a method body bound to the pass that type checked it.
type fragment struct {
	fe   *Frontend
	decl *ast.FuncDecl
}

// Calls enumerates call expressions of the body together with their
// nearest enclosing statements. Calls within nested function literals are
// listed too: their statements live outside the method's control flow
// graph, so their reachability comes out indeterminate.
func (f fragment) Calls() []baserule.Call {
	var calls []baserule.Call

	var stack []ast.Node
	ast.Inspect(f.decl.Body, func(node ast.Node) bool {
		if node == nil {
			stack = stack[:len(stack)-1]
			return true
		}

		if call, ok := node.(*ast.CallExpr); ok {
			calls = append(calls, callsite{
				fe:   f.fe,
				call: call,
				stmt: nearestStmt(stack),
			})
		}

		stack = append(stack, node)
		return true
	})

	return calls
}

// nearestStmt returns the innermost statement on the traversal stack.
func nearestStmt(stack []ast.Node) ast.Stmt {
	for i := len(stack) - 1; i >= 0; i-- {
		if stmt, ok := stack[i].(ast.Stmt); ok {
			return stmt
		}
	}

	return nil
}

// callsite adapts one call expression to baserule.Call.
type callsite struct {
	fe   *Frontend
	call *ast.CallExpr
	stmt ast.Stmt
}

func (c callsite) Target() (baserule.Method, bool) {
	callee := typeutil.Callee(c.fe.pass.TypesInfo, c.call)
	fn, ok := callee.(*types.Func)
	if !ok {
		// Unresolved, a builtin, or a closure. Not what we are looking for.
		return nil, false
	}

	if fn.Type().(*types.Signature).Recv() == nil {
		return nil, false
	}

	return method{fe: c.fe, fn: fn}, true
}

func (c callsite) Enclosing() (baserule.Stmt, bool) {
	if c.stmt == nil {
		return nil, false
	}

	return c.stmt, true
}
