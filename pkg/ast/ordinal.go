package ast

// AssignOrdinals walks the tree rooted at n depth-first, left to right,
// stamping each node's Ordinal() in visitation order starting at start.
// It returns the next unused ordinal, so callers parsing a sequence of
// directives can thread ordinals across them. The parser calls this
// once per tree before returning a result; ordinals are otherwise
// zero.
func AssignOrdinals(n *Node, start uint) uint {
	if n == nil {
		return start
	}
	n.ordinal = start
	next := start + 1
	for _, c := range n.children {
		next = AssignOrdinals(c, next)
	}
	return next
}
