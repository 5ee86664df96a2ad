// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

// Package plan defines the relational operator tree that is the logical
// representation of a query, along with the generic machinery that operates
// on it: the attribute-set algebra used to validate that a node's expressions
// are satisfied by its children's output, the rule-driven expression rewrite
// engine, the constraint-derivation engine and the subquery collector.
//
// Plan nodes are immutable after construction. Every transformation produces
// a new node; a transformation that changes nothing returns the original node
// reference, so reference equality can be used to detect whether a rewrite
// fired. Nodes may therefore be shared read-only across concurrent planning
// pipelines.
package plan

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/crestdb/crest/pkg/sql/sem/scalar"
	"github.com/crestdb/crest/pkg/sql/sqlbase"
)

// Node is a node in a tree of relational operators. The set of operators is
// closed to this package; each operator enumerates its own expression-bearing
// fields so that the rewrite engine can operate without reflection.
type Node interface {
	// Op returns the type of the operator.
	Op() Operator

	// Output returns the attributes produced by the node, in column order.
	// Callers must not mutate the returned slice.
	Output() []*scalar.Attribute

	// Children returns the node's structural child operators. Subquery plans
	// embedded in expressions are not children; see InnerChildren.
	Children() []Node

	// WithNewChildren constructs a copy of the node with the given children,
	// which must match Children in length. The receiver is not modified.
	WithNewChildren(children []Node) Node

	// ValidConstraints returns the operator-specific predicates guaranteed to
	// be true for every row the node emits, before relevance filtering. Use
	// Constraints to obtain the filtered, deduplicated set.
	ValidConstraints() []scalar.Expr

	// ProducedAttributes returns the attributes the node synthesizes itself
	// rather than obtaining from its children. These are exempt from the
	// missing-input check.
	ProducedAttributes() scalar.AttrSet

	// mapExpressions applies the mapper to each expression-bearing field of
	// the node (not of its children) and reconstructs the node only if a
	// field actually changed. Fields holding key/value mappings or schema
	// descriptors are passed through verbatim.
	mapExpressions(m *exprMapper) Node

	// props returns the node's memoized derived properties.
	props() *nodeProps
}

// nodeProps holds lazily-derived, memoized per-instance properties. Every
// node construction site builds a fresh value, so caches never survive a
// transformation. Recomputation is pure, so the sync.Once cells are only an
// at-most-once optimization, not a correctness requirement.
type nodeProps struct {
	constraintsOnce sync.Once
	constraints     *scalar.ExprSet
	schemaOnce      sync.Once
	schema          sqlbase.ResultColumns
}

// OutputSet returns the node's output attributes as a set.
func OutputSet(n Node) scalar.AttrSet {
	return scalar.MakeAttrSet(n.Output()...)
}

// References returns the union of the attributes read by every expression
// embedded in the node's own fields.
func References(n Node) scalar.AttrSet {
	var refs scalar.AttrSet
	for _, e := range Expressions(n) {
		refs.UnionWith(scalar.References(e))
	}
	return refs
}

// InputSet returns the union of the children's output sets.
func InputSet(n Node) scalar.AttrSet {
	var in scalar.AttrSet
	for _, c := range n.Children() {
		in.UnionWith(OutputSet(c))
	}
	return in
}

// MissingInput returns the attributes referenced by the node's expressions
// but supplied by neither its children nor its own produced attributes. A
// non-empty result means the node is structurally invalid: some expression
// reads a column nothing supplies.
func MissingInput(n Node) scalar.AttrSet {
	missing := References(n)
	missing.DifferenceWith(InputSet(n))
	missing.DifferenceWith(n.ProducedAttributes())
	return missing
}

// mapChildren applies f to each child and reconstructs the node via
// WithNewChildren only if at least one child actually changed.
func mapChildren(n Node, f func(Node) Node) Node {
	children := n.Children()
	var newChildren []Node
	for i, c := range children {
		r := f(c)
		if newChildren == nil && r != c {
			newChildren = make([]Node, len(children))
			copy(newChildren, children[:i])
		}
		if newChildren != nil {
			newChildren[i] = r
		}
	}
	if newChildren == nil {
		return n
	}
	return n.WithNewChildren(newChildren)
}

// TransformDown rewrites the tree by offering f to each node before its
// children are rewritten. f returning its argument (or nil) means no change.
// If nothing changes, the original node reference is returned.
func TransformDown(n Node, f func(Node) Node) Node {
	cur := n
	if r := f(cur); r != nil && r != cur {
		cur = r
	}
	return mapChildren(cur, func(c Node) Node {
		return TransformDown(c, f)
	})
}

// TransformUp rewrites the tree by offering f to each node after its children
// have been rewritten.
func TransformUp(n Node, f func(Node) Node) Node {
	cur := mapChildren(n, func(c Node) Node {
		return TransformUp(c, f)
	})
	if r := f(cur); r != nil && r != cur {
		return r
	}
	return cur
}

// Transform rewrites every node of the tree. It delegates to TransformDown,
// but callers must not rely on any specific order; use a directional variant
// if the order matters.
func Transform(n Node, f func(Node) Node) Node {
	return TransformDown(n, f)
}

// Collect returns every node in the tree for which pred returns true, in
// depth-first pre-order.
func Collect(n Node, pred func(Node) bool) []Node {
	var res []Node
	var walk func(Node)
	walk = func(m Node) {
		if pred(m) {
			res = append(res, m)
		}
		for _, c := range m.Children() {
			walk(c)
		}
	}
	walk(n)
	return res
}

func checkArity(op Operator, got, want int) {
	if got != want {
		panic(errors.AssertionFailedf("%v expects %d children, got %d", op, want, got))
	}
}
