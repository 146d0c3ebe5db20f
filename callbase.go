package callbase

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/ctrlflow"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/callbase/internal/baserule"
	"github.com/sirkon/callbase/internal/gofront"
)

const doc = `callbase reports overriding methods that never call the implementation they shadow.

A method marked with the //callbase:require directive demands every method
shadowing it through struct embedding, directly or further down the chain,
to call it from a reachable statement.`

// Analyzer is the main entry point for the linter.
var Analyzer = &analysis.Analyzer{
	Name:      "callbase",
	Doc:       doc,
	Requires:  []*analysis.Analyzer{inspect.Analyzer, ctrlflow.Analyzer},
	FactTypes: []analysis.Fact{new(gofront.RequiredFact)},
	Run:       run,
}

var (
	flagConfig string
	flagMarker string
)

func init() {
	Analyzer.Flags.StringVar(&flagConfig, "config", "", "path to a yaml config file")
	Analyzer.Flags.StringVar(&flagMarker, "marker", "", "marker directive text, overrides the config file")
}

func run(pass *analysis.Pass) (any, error) {
	cfg, err := effectiveConfig()
	if err != nil {
		return nil, err
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	cfgs := pass.ResultOf[ctrlflow.Analyzer].(*ctrlflow.CFGs)

	fe := gofront.New(pass, pector, cfgs, cfg.Marker)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
	}

	pector.Preorder(nodeFilter, func(node ast.Node) {
		decl := node.(*ast.FuncDecl) // No need to assert check since we only get func decls.
		if decl.Recv == nil || decl.Body == nil {
			return
		}

		m, ok := fe.MethodOf(decl)
		if !ok {
			return
		}

		d, ok := baserule.Check(m)
		if !ok {
			return
		}

		pass.Report(analysis.Diagnostic{
			Pos:      d.Pos,
			Category: d.Rule,
			Message:  d.Message,
		})
	})

	return nil, nil
}
