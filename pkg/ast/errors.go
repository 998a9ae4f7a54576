package ast

import "fmt"

// InvalidChildError is raised by a constructor precondition: every
// non-leaf kind fails construction if a child reference is of the
// wrong kind.
type InvalidChildError struct {
	Constructor string
	Want        Kind
	Got         *Node
}

func (e *InvalidChildError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("%s: required %s, got nil", e.Constructor, e.Want.Name())
	}
	return fmt.Sprintf("%s: required %s, got %s", e.Constructor, e.Want.Name(), e.Got.Kind().Name())
}

func requireKind(constructor string, n *Node, want Kind) error {
	if n == nil || !n.InstanceOf(want) {
		return &InvalidChildError{Constructor: constructor, Want: want, Got: n}
	}
	return nil
}

func requireOptionalKind(constructor string, n *Node, want Kind) error {
	if n == nil {
		return nil
	}
	return requireKind(constructor, n, want)
}

func requireKindAll(constructor string, nodes []*Node, want Kind) error {
	for _, n := range nodes {
		if err := requireKind(constructor, n, want); err != nil {
			return err
		}
	}
	return nil
}
