package ast

import "github.com/orneryd/ocypher/pkg/position"

// Node is the universal node shape: a kind tag, an input range, an
// ordinal assigned after the whole tree is built, the ordered
// structural children used for cloning/rendering/ordinal-walk, and a
// kind-specific payload. Payload slots (e.g. Match.Pattern) are views
// into Children by index, never a separate copy — see payload.go.
type Node struct {
	kind     Kind
	rng      position.Range
	ordinal  uint
	children []*Node
	payload  any
}

// newNode is the single low-level allocator every exported constructor
// in the construct_*.go files funnels through, so every Node in the tree shares
// this shape regardless of kind.
func newNode(kind Kind, rng position.Range, children []*Node, payload any) *Node {
	return &Node{kind: kind, rng: rng, children: children, payload: payload}
}

// Kind returns the node's kind tag.
func (n *Node) Kind() Kind { return n.kind }

// Range returns the node's input range.
func (n *Node) Range() position.Range { return n.rng }

// Ordinal returns the node's depth-first ordinal, valid only after
// the parser has walked the finished tree (see ordinal.go).
func (n *Node) Ordinal() uint { return n.ordinal }

// NChildren returns the number of structural children.
func (n *Node) NChildren() int { return len(n.children) }

// Child returns the i'th structural child.
func (n *Node) Child(i int) *Node { return n.children[i] }

// Children returns the structural children slice. Callers must not
// mutate the returned slice.
func (n *Node) Children() []*Node { return n.children }

// Payload returns the kind-specific payload struct (see payload.go);
// callers type-switch on Kind() to know which payload type to expect.
func (n *Node) Payload() any { return n.payload }

// InstanceOf reports whether the node's kind is or descends from k.
func (n *Node) InstanceOf(k Kind) bool { return n.kind.InstanceOf(k) }

// AttachComments appends comment nodes to n's structural children.
// Comments are ambient: they live in Children only, never in payload
// slots, so appending them does not disturb payload slot aliasing. Non-comment nodes are rejected.
func AttachComments(n *Node, comments []*Node) error {
	for _, c := range comments {
		if c == nil || (c.kind != KindLineComment && c.kind != KindBlockComment) {
			return &InvalidChildError{Constructor: "AttachComments", Want: KindLineComment, Got: c}
		}
	}
	n.children = append(n.children, comments...)
	return nil
}
