package ast

import "github.com/orneryd/ocypher/pkg/position"

func newLeaf(kind Kind, text string, rng position.Range) *Node {
	return newNode(kind, rng, nil, LeafPayload{Text: text})
}

// NewIdentifier constructs an IDENTIFIER leaf.
func NewIdentifier(text string, rng position.Range) *Node { return newLeaf(KindIdentifier, text, rng) }

// NewParameter constructs a PARAMETER leaf ($name or $1).
func NewParameter(text string, rng position.Range) *Node { return newLeaf(KindParameter, text, rng) }

// NewString constructs a STRING leaf holding the decoded text.
func NewString(text string, rng position.Range) *Node { return newLeaf(KindString, text, rng) }

// NewInteger constructs an INTEGER leaf preserving the literal lexeme.
func NewInteger(lexeme string, rng position.Range) *Node { return newLeaf(KindInteger, lexeme, rng) }

// NewFloat constructs a FLOAT leaf preserving the literal lexeme.
func NewFloat(lexeme string, rng position.Range) *Node { return newLeaf(KindFloat, lexeme, rng) }

// NewTrue/NewFalse/NewNull construct the corresponding payload-less leaves.
func NewTrue(rng position.Range) *Node  { return newNode(KindTrue, rng, nil, nil) }
func NewFalse(rng position.Range) *Node { return newNode(KindFalse, rng, nil, nil) }
func NewNull(rng position.Range) *Node  { return newNode(KindNull, rng, nil, nil) }

// NewLabel constructs a LABEL leaf.
func NewLabel(text string, rng position.Range) *Node { return newLeaf(KindLabel, text, rng) }

// NewRelType constructs a RELTYPE leaf.
func NewRelType(text string, rng position.Range) *Node { return newLeaf(KindRelType, text, rng) }

// NewPropName constructs a PROP_NAME leaf.
func NewPropName(text string, rng position.Range) *Node { return newLeaf(KindPropName, text, rng) }

// NewFunctionName constructs a FUNCTION_NAME leaf.
func NewFunctionName(text string, rng position.Range) *Node {
	return newLeaf(KindFunctionName, text, rng)
}

// NewIndexName constructs an INDEX_NAME leaf.
func NewIndexName(text string, rng position.Range) *Node { return newLeaf(KindIndexName, text, rng) }

// NewProcName constructs a PROC_NAME leaf.
func NewProcName(text string, rng position.Range) *Node { return newLeaf(KindProcName, text, rng) }

// NewLineComment constructs a LINE_COMMENT leaf (text excludes the
// leading "//").
func NewLineComment(text string, rng position.Range) *Node {
	return newLeaf(KindLineComment, text, rng)
}

// NewBlockComment constructs a BLOCK_COMMENT leaf (text excludes the
// surrounding "/*"/"*/").
func NewBlockComment(text string, rng position.Range) *Node {
	return newLeaf(KindBlockComment, text, rng)
}

// NewError constructs an ERROR leaf spanning the offending lexeme or
// recovered region.
func NewError(text string, rng position.Range) *Node { return newLeaf(KindError, text, rng) }

// Text returns the decoded text of a leaf node. Panics if n's payload
// is not a LeafPayload — callers must check Kind() first.
func Text(n *Node) string { return n.payload.(LeafPayload).Text }
