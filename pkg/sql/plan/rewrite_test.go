// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package plan

import (
	"testing"

	"github.com/crestdb/crest/pkg/sql/sem/scalar"
	"github.com/crestdb/crest/pkg/sql/types"
	"github.com/stretchr/testify/require"
)

func intAttr(name string) *scalar.Attribute {
	return scalar.NewAttribute(name, types.Int, false)
}

// testTree builds select(a > 5) -> project(a, b) -> scan t(a, b).
func testTree(t *testing.T) (*Select, *scalar.Attribute, *scalar.Attribute) {
	t.Helper()
	a := intAttr("a")
	b := intAttr("b")
	scan := NewScan("t", []*scalar.Attribute{a, b})
	proj := NewProject([]scalar.Expr{a, b}, []*scalar.Attribute{a, b}, scan)
	sel := NewSelect(scalar.NewComparison(scalar.GT, a, scalar.NewConst(5, types.Int)), proj)
	return sel, a, b
}

func TestTransformExpressionsIdentity(t *testing.T) {
	sel, _, _ := testTree(t)
	noMatch := func(scalar.Expr) (scalar.Expr, bool) { return nil, false }

	// A rule whose domain matches nothing returns the exact original node
	// reference: no reconstruction in either direction, per node or for the
	// whole tree.
	require.True(t, TransformExpressionsDown(sel, noMatch) == Node(sel))
	require.True(t, TransformExpressionsUp(sel, noMatch) == Node(sel))
	require.True(t, TransformExpressions(sel, noMatch) == Node(sel))
	require.True(t, TransformAllExpressions(sel, noMatch) == Node(sel))
}

func TestTransformExpressionsChangeTracking(t *testing.T) {
	a := intAttr("a")
	b := intAttr("b")
	one := scalar.NewConst(1, types.Int)
	two := scalar.NewConst(2, types.Int)
	scan := NewScan("t", []*scalar.Attribute{a, b})
	proj := NewProject(
		[]scalar.Expr{scalar.NewComparison(scalar.EQ, a, one), b},
		[]*scalar.Attribute{intAttr("eq"), b},
		scan,
	)

	rule := func(e scalar.Expr) (scalar.Expr, bool) {
		if c, ok := e.(*scalar.ConstExpr); ok && c.Value == 1 {
			return two, true
		}
		return nil, false
	}

	got := TransformExpressionsDown(proj, rule)
	require.NotSame(t, proj, got)
	gotProj := got.(*Project)
	// The sibling expression and the child keep their references.
	require.True(t, gotProj.Exprs[1] == scalar.Expr(b))
	require.Same(t, scan, gotProj.Input)
	// Column descriptors are not rewrite targets.
	require.Same(t, proj.Cols[0], gotProj.Cols[0])
	// The rewrite landed.
	require.Equal(t, 2, gotProj.Exprs[0].(*scalar.ComparisonExpr).Right.(*scalar.ConstExpr).Value)
	// The original is untouched.
	require.Equal(t, 1, proj.Exprs[0].(*scalar.ComparisonExpr).Right.(*scalar.ConstExpr).Value)
}

func TestTransformExpressionsNestedSequence(t *testing.T) {
	x := intAttr("x")
	y := intAttr("y")
	rows := [][]scalar.Expr{
		{scalar.NewConst(1, types.Int), scalar.NewConst(2, types.Int)},
		{scalar.NewConst(3, types.Int), scalar.NewConst(4, types.Int)},
	}
	v := NewValues([]*scalar.Attribute{x, y}, rows)

	rule := func(e scalar.Expr) (scalar.Expr, bool) {
		if c, ok := e.(*scalar.ConstExpr); ok && c.Value == 4 {
			return scalar.NewConst(40, types.Int), true
		}
		return nil, false
	}

	got := TransformExpressionsUp(v, rule).(*Values)
	require.NotSame(t, v, got)
	// The untouched row keeps its identity; the changed row keeps its
	// untouched elements.
	require.True(t, got.Rows[0][0] == v.Rows[0][0])
	require.True(t, got.Rows[0][1] == v.Rows[0][1])
	require.True(t, got.Rows[1][0] == v.Rows[1][0])
	require.Equal(t, 40, got.Rows[1][1].(*scalar.ConstExpr).Value)
}

func TestTransformExpressionsDirectionalEquivalence(t *testing.T) {
	// For a rule with no overlap between an expression's domain and its own
	// sub-expressions', Down and Up produce identical results.
	sel, _, _ := testTree(t)
	rule := func(e scalar.Expr) (scalar.Expr, bool) {
		if c, ok := e.(*scalar.ConstExpr); ok && c.Value == 5 {
			return scalar.NewConst(50, types.Int), true
		}
		return nil, false
	}

	down := TransformExpressionsDown(sel, rule).(*Select)
	up := TransformExpressionsUp(sel, rule).(*Select)
	require.True(t, scalar.Equal(down.Filter, up.Filter))
	require.Equal(t, 50, down.Filter.(*scalar.ComparisonExpr).Right.(*scalar.ConstExpr).Value)
}

func TestTransformAllExpressions(t *testing.T) {
	sel, _, _ := testTree(t)

	var seen int
	countingIdentity := func(e scalar.Expr) (scalar.Expr, bool) {
		seen++
		return nil, false
	}
	got := TransformAllExpressions(sel, countingIdentity)
	require.True(t, got == Node(sel))
	// Offered to every expression node at every level of the tree: the
	// filter's three nodes plus the projection's two attribute expressions.
	require.Equal(t, 5, seen)

	rule := func(e scalar.Expr) (scalar.Expr, bool) {
		if c, ok := e.(*scalar.ConstExpr); ok && c.Value == 5 {
			return scalar.NewConst(99, types.Int), true
		}
		return nil, false
	}
	rewritten := TransformAllExpressions(sel, rule).(*Select)
	require.NotSame(t, sel, rewritten)
	require.Equal(t, 99, rewritten.Filter.(*scalar.ComparisonExpr).Right.(*scalar.ConstExpr).Value)
	// The untouched project and scan below keep their references.
	require.Same(t, sel.Input, rewritten.Input)
}

func TestExpressionsEncounterOrder(t *testing.T) {
	a := intAttr("a")
	b := intAttr("b")
	scan := NewScan("t", []*scalar.Attribute{a, b})
	proj := NewProject([]scalar.Expr{b, a}, []*scalar.Attribute{b, a}, scan)

	exprs := Expressions(proj)
	require.Len(t, exprs, 2)
	require.True(t, exprs[0] == scalar.Expr(b))
	require.True(t, exprs[1] == scalar.Expr(a))

	// Leaf fields that are not expression containers contribute nothing.
	require.Empty(t, Expressions(scan))
	require.Empty(t, Expressions(NewLimit(10, scan)))
}
