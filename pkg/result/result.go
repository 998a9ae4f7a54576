// Package result implements the parse-result container: the
// ordered sequence of top-level elements produced by one parser
// invocation, the subset of those that are directives, and the
// diagnostics accumulated along the way.
package result

import (
	"io"

	"github.com/orneryd/ocypher/pkg/ast"
	"github.com/orneryd/ocypher/pkg/parser"
	"github.com/orneryd/ocypher/pkg/perrors"
	"github.com/orneryd/ocypher/pkg/position"
)

// ParseResult owns every top-level node produced by a parse, in input
// order, plus the reified diagnostics and whether end-of-input was
// reached.
type ParseResult struct {
	elements []*ast.Node
	errors   []*perrors.ParseError
	eof      bool
	lastPos  position.Position
}

// Parse runs the grammar engine over in-memory input to completion.
func Parse(input []byte, cfg parser.Config, flags parser.Flags) *ParseResult {
	return collect(parser.New(input, cfg, flags))
}

// ParseStream runs the grammar engine over a chunked io.Reader.
func ParseStream(r io.Reader, cfg parser.Config, flags parser.Flags) *ParseResult {
	return collect(parser.NewStream(r, cfg, flags))
}

func collect(p *parser.Parser) *ParseResult {
	elements, errs, eof := p.Elements()
	return &ParseResult{elements: elements, errors: errs, eof: eof, lastPos: p.LastPos()}
}

// Elements returns every top-level node in input order, including
// ERROR nodes and comments found between directives.
func (r *ParseResult) Elements() []*ast.Node { return r.elements }

// Element returns the i'th top-level node.
func (r *ParseResult) Element(i int) *ast.Node { return r.elements[i] }

// Directives returns the subset of Elements that are STATEMENT or
// COMMAND nodes.
func (r *ParseResult) Directives() []*ast.Node {
	var out []*ast.Node
	for _, n := range r.elements {
		if n.InstanceOf(ast.KindStatement) || n.InstanceOf(ast.KindCommand) {
			out = append(out, n)
		}
	}
	return out
}

// Directive returns the i'th directive (see Directives).
func (r *ParseResult) Directive(i int) *ast.Node { return r.Directives()[i] }

// Errors returns every reified diagnostic, in the order parsing
// produced them.
func (r *ParseResult) Errors() []*perrors.ParseError { return r.errors }

// Error returns the i'th diagnostic.
func (r *ParseResult) Error(i int) *perrors.ParseError { return r.errors[i] }

// NodeCount returns the total transitive node count across every
// top-level element.
func (r *ParseResult) NodeCount() int {
	count := 0
	for _, n := range r.elements {
		count += countNodes(n)
	}
	return count
}

func countNodes(n *ast.Node) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, c := range n.Children() {
		count += countNodes(c)
	}
	return count
}

// EOF reports whether the parse reached end-of-input.
func (r *ParseResult) EOF() bool { return r.eof }

// LastPosition reports the input position the parse stopped at, for
// callers embedding this parse inside a larger document.
func (r *ParseResult) LastPosition() position.Position { return r.lastPos }
