// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package plan

import (
	"github.com/crestdb/crest/pkg/sql/sem/scalar"
)

// Constraints returns the set of predicates guaranteed to be true for every
// row the node emits: the operator's ValidConstraints plus the non-null facts
// derived from them, filtered to constraints that mention only the node's own
// output attributes, deduplicated by canonical form. The result is memoized
// per node instance and never mentions an attribute absent from the node's
// output.
func Constraints(n Node) *scalar.ExprSet {
	p := n.props()
	p.constraintsOnce.Do(func() {
		set := scalar.MakeExprSet(relevantConstraints(n, n.ValidConstraints())...)
		p.constraints = &set
	})
	return p.constraints
}

// isNotNullConstraints infers non-nullability: a comparison that evaluates to
// true requires both of its operands to be non-null, whichever of the five
// comparison shapes it is. Other expression shapes contribute nothing.
func isNotNullConstraints(constraints []scalar.Expr) []scalar.Expr {
	var derived []scalar.Expr
	for _, e := range constraints {
		if cmp, ok := e.(*scalar.ComparisonExpr); ok {
			derived = append(derived,
				scalar.NewIsNotNull(cmp.Left),
				scalar.NewIsNotNull(cmp.Right),
			)
		}
	}
	return derived
}

// relevantConstraints unions the given constraints with their derived
// non-null facts, then drops any constraint whose reference set is empty (a
// tautology with no column dependency) or mentions an attribute the node does
// not project (neither verifiable nor meaningful once the column is gone).
func relevantConstraints(n Node, valid []scalar.Expr) []scalar.Expr {
	output := OutputSet(n)
	all := make([]scalar.Expr, 0, 3*len(valid))
	all = append(all, valid...)
	all = append(all, isNotNullConstraints(valid)...)
	var res []scalar.Expr
	for _, e := range all {
		refs := scalar.References(e)
		if !refs.Empty() && refs.SubsetOf(output) {
			res = append(res, e)
		}
	}
	return res
}

// splitConjuncts flattens a conjunction into its component predicates.
func splitConjuncts(e scalar.Expr) []scalar.Expr {
	if and, ok := e.(*scalar.AndExpr); ok {
		return append(splitConjuncts(and.Left), splitConjuncts(and.Right)...)
	}
	return []scalar.Expr{e}
}

// inheritedConstraints returns the child's constraint set as a slice, for
// operators whose guarantees include everything their input guarantees.
func inheritedConstraints(child Node) []scalar.Expr {
	inherited := Constraints(child).Ordered()
	res := make([]scalar.Expr, len(inherited))
	copy(res, inherited)
	return res
}
