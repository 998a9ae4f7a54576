package ast

import "github.com/orneryd/ocypher/pkg/position"

// NewPattern constructs a PATTERN node: a comma-separated path list.
func NewPattern(paths []*Node, rng position.Range) (*Node, error) {
	for _, p := range paths {
		if !(p.InstanceOf(KindPatternPath) || p.InstanceOf(KindNamedPath) || p.InstanceOf(KindShortestPath)) {
			return nil, &InvalidChildError{Constructor: "Pattern", Want: KindPatternPath, Got: p}
		}
	}
	return newNode(KindPattern, rng, paths, PatternPayload{Paths: paths}), nil
}

// NewNamedPath constructs a NAMED_PATH node: `p = (a)-->(b)`.
func NewNamedPath(identifier, path *Node, rng position.Range) (*Node, error) {
	if err := requireKind("NamedPath", identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKind("NamedPath", path, KindExpression); err != nil {
		return nil, err
	}
	return newNode(KindNamedPath, rng, []*Node{identifier, path},
		NamedPathPayload{Identifier: identifier, Path: path}), nil
}

// NewShortestPath constructs a SHORTEST_PATH node.
func NewShortestPath(single bool, path *Node, rng position.Range) (*Node, error) {
	if err := requireKind("ShortestPath", path, KindExpression); err != nil {
		return nil, err
	}
	return newNode(KindShortestPath, rng, []*Node{path},
		ShortestPathPayload{Single: single, Path: path}), nil
}

// NewPatternPath constructs a PATTERN_PATH node: an odd-length
// alternating (node, rel, node, ..., node) sequence.
func NewPatternPath(elements []*Node, rng position.Range) (*Node, error) {
	if len(elements) == 0 || len(elements)%2 == 0 {
		return nil, &InvalidChildError{Constructor: "PatternPath", Want: KindNodePattern}
	}
	for i, e := range elements {
		want := KindNodePattern
		if i%2 == 1 {
			want = KindRelPattern
		}
		if err := requireKind("PatternPath", e, want); err != nil {
			return nil, err
		}
	}
	return newNode(KindPatternPath, rng, elements, PatternPathPayload{Elements: elements}), nil
}

// NewNodePattern constructs a NODE_PATTERN node: `(id:Label {props})`.
func NewNodePattern(identifier *Node, labels []*Node, properties *Node, rng position.Range) (*Node, error) {
	if err := requireOptionalKind("NodePattern", identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKindAll("NodePattern", labels, KindLabel); err != nil {
		return nil, err
	}
	if properties != nil && !(properties.InstanceOf(KindMap) || properties.InstanceOf(KindParameter)) {
		return nil, &InvalidChildError{Constructor: "NodePattern", Want: KindMap, Got: properties}
	}
	var children []*Node
	if identifier != nil {
		children = append(children, identifier)
	}
	children = append(children, labels...)
	if properties != nil {
		children = append(children, properties)
	}
	return newNode(KindNodePattern, rng, children,
		NodePatternPayload{Identifier: identifier, Labels: labels, Properties: properties}), nil
}

// NewRelPattern constructs a REL_PATTERN node:
// `-[id:TYPE*1..3 {props}]->`.
func NewRelPattern(direction Direction, identifier *Node, reltypes []*Node, varlength, properties *Node, rng position.Range) (*Node, error) {
	if err := requireOptionalKind("RelPattern", identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKindAll("RelPattern", reltypes, KindRelType); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("RelPattern", varlength, KindRange); err != nil {
		return nil, err
	}
	if properties != nil && !(properties.InstanceOf(KindMap) || properties.InstanceOf(KindParameter)) {
		return nil, &InvalidChildError{Constructor: "RelPattern", Want: KindMap, Got: properties}
	}
	var children []*Node
	if identifier != nil {
		children = append(children, identifier)
	}
	children = append(children, reltypes...)
	if varlength != nil {
		children = append(children, varlength)
	}
	if properties != nil {
		children = append(children, properties)
	}
	return newNode(KindRelPattern, rng, children, RelPatternPayload{
		Direction: direction, Identifier: identifier, RelTypes: reltypes,
		VarLength: varlength, Properties: properties,
	}), nil
}

// NewRange constructs a RANGE node: `*`, `*3`, `*2..`, `*..5`, `*2..5`.
func NewRange(start, end *Node, rng position.Range) (*Node, error) {
	if err := requireOptionalKind("Range", start, KindInteger); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("Range", end, KindInteger); err != nil {
		return nil, err
	}
	var children []*Node
	if start != nil {
		children = append(children, start)
	}
	if end != nil {
		children = append(children, end)
	}
	return newNode(KindRange, rng, children, RangePayload{Start: start, End: end}), nil
}
