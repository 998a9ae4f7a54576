package parser

import (
	"github.com/orneryd/ocypher/pkg/ast"
	"github.com/orneryd/ocypher/pkg/position"
)

// spanFrom builds a range from start to the end of n's range, the
// common case of "this construct covers its first token through its
// last child".
func spanFrom(start position.Position, n *ast.Node) position.Range {
	if n == nil {
		return position.Range{Start: start, End: start}
	}
	return position.Range{Start: start, End: n.Range().End}
}

// spanFromPos builds a range from two explicit positions.
func spanFromPos(start, end position.Position) position.Range {
	return position.Range{Start: start, End: end}
}
