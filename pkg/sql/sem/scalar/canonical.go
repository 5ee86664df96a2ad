// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package scalar

// Canonicalize returns the canonical form of the expression: a deterministic
// normalization under which semantically-equivalent commuted forms produce an
// identical result. Operands of commutative operators are ordered by
// fingerprint, and ordering comparisons are oriented so that the smaller
// fingerprint is on the left (a > 5 and 5 < a canonicalize identically).
// Structurally equal inputs always produce equal outputs.
func Canonicalize(e Expr) Expr {
	e = mapOperands(e, Canonicalize)
	switch t := e.(type) {
	case *ComparisonExpr:
		switch t.Op {
		case EQ:
			if Fingerprint(t.Right) < Fingerprint(t.Left) {
				return &ComparisonExpr{Op: EQ, Left: t.Right, Right: t.Left}
			}
		case GT:
			return &ComparisonExpr{Op: LT, Left: t.Right, Right: t.Left}
		case GE:
			return &ComparisonExpr{Op: LE, Left: t.Right, Right: t.Left}
		}
	case *AndExpr:
		if Fingerprint(t.Right) < Fingerprint(t.Left) {
			return &AndExpr{Left: t.Right, Right: t.Left}
		}
	}
	return e
}
