// Command callbase runs the analyzer standalone or as a go vet tool.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sirkon/callbase"
)

func main() {
	singlechecker.Main(callbase.Analyzer)
}
