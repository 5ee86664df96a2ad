// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package scalar

import (
	"testing"

	"github.com/crestdb/crest/pkg/sql/types"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeCommutedEquality(t *testing.T) {
	a := NewAttribute("a", types.Int, false)
	b := NewAttribute("b", types.Int, false)

	ab := NewComparison(EQ, a, b)
	ba := NewComparison(EQ, b, a)
	require.Equal(t, Fingerprint(Canonicalize(ab)), Fingerprint(Canonicalize(ba)))
}

func TestCanonicalizeOrientation(t *testing.T) {
	a := NewAttribute("a", types.Int, false)
	five := NewConst(5, types.Int)

	// a > 5 and 5 < a are the same predicate.
	gt := NewComparison(GT, a, five)
	lt := NewComparison(LT, five, a)
	require.Equal(t, Fingerprint(Canonicalize(gt)), Fingerprint(Canonicalize(lt)))

	// a >= 5 and 5 <= a likewise.
	ge := NewComparison(GE, a, five)
	le := NewComparison(LE, five, a)
	require.Equal(t, Fingerprint(Canonicalize(ge)), Fingerprint(Canonicalize(le)))

	// a > 5 and a < 5 are not.
	require.NotEqual(t,
		Fingerprint(Canonicalize(gt)),
		Fingerprint(Canonicalize(NewComparison(LT, a, five))))
}

func TestCanonicalizeDeterminism(t *testing.T) {
	a := NewAttribute("a", types.Int, false)
	b := NewAttribute("b", types.Int, false)

	// Structurally equal inputs canonicalize identically, including nested
	// commuted forms.
	e1 := NewAnd(NewComparison(EQ, a, b), NewIsNotNull(a))
	e2 := NewAnd(NewIsNotNull(a), NewComparison(EQ, b, a))
	require.Equal(t, Fingerprint(Canonicalize(e1)), Fingerprint(Canonicalize(e2)))
}

func TestExprSetCanonicalDedup(t *testing.T) {
	a := NewAttribute("a", types.Int, false)
	b := NewAttribute("b", types.Int, false)

	s := MakeExprSet(
		NewComparison(EQ, a, b),
		NewComparison(EQ, b, a),
	)
	require.Equal(t, 1, s.Len())
	require.True(t, s.Contains(NewComparison(EQ, b, a)))

	// The first-added representative is retained.
	first := s.Ordered()[0].(*ComparisonExpr)
	require.True(t, first.Left == Expr(a))
}

func TestExprSetOps(t *testing.T) {
	a := NewAttribute("a", types.Int, false)
	gt := NewComparison(GT, a, NewConst(5, types.Int))
	nn := NewIsNotNull(a)

	var s ExprSet
	require.True(t, s.Empty())
	s.Add(gt)
	s.Add(nn)
	s.Add(gt)
	require.Equal(t, 2, s.Len())

	other := MakeExprSet(nn)
	s.UnionWith(other)
	require.Equal(t, 2, s.Len())

	require.True(t, s.Equals(MakeExprSet(nn, gt)))
	require.False(t, s.Equals(other))
}
