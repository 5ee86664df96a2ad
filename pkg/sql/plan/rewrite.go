// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package plan

import (
	"github.com/crestdb/crest/pkg/sql/sem/scalar"
)

// Rule is a partial expression rewrite; see scalar.Rule. Inputs outside the
// rule's domain pass through unchanged by construction.
type Rule = scalar.Rule

// exprMapper applies a rewrite to the expression-bearing fields of a single
// node, tracking whether anything changed so that the node is reconstructed
// only when necessary. Each operator's mapExpressions enumerates its fields
// through the typed helpers below; this replaces runtime field reflection
// with a per-operator, statically-typed descent:
//
//   - a bare expression field goes through expr
//   - an optional (possibly nil) expression field also goes through expr
//   - an ordered sequence goes through exprList; nested sequences through
//     exprMatrix
//   - key/value mappings and schema/attribute descriptors are never handed to
//     the mapper at all
type exprMapper struct {
	apply   func(scalar.Expr) scalar.Expr
	changed bool
}

// expr rewrites a single expression field. Nil (an absent optional
// expression) passes through. The original reference is returned when the
// rewrite is a no-op, so sibling fields keep their identity.
func (m *exprMapper) expr(e scalar.Expr) scalar.Expr {
	if e == nil {
		return nil
	}
	r := m.apply(e)
	if scalar.Equal(r, e) {
		return e
	}
	m.changed = true
	return r
}

// exprList rewrites a sequence field element-wise. The original slice is
// returned if no element changed.
func (m *exprMapper) exprList(list []scalar.Expr) []scalar.Expr {
	var out []scalar.Expr
	for i, e := range list {
		r := m.expr(e)
		if out == nil && r != e {
			out = make([]scalar.Expr, len(list))
			copy(out, list[:i])
		}
		if out != nil {
			out[i] = r
		}
	}
	if out == nil {
		return list
	}
	return out
}

// exprMatrix rewrites a nested sequence field row by row. Rows with no
// changed element keep their identity, as does the outer slice if no row
// changed.
func (m *exprMapper) exprMatrix(rows [][]scalar.Expr) [][]scalar.Expr {
	var out [][]scalar.Expr
	for i, row := range rows {
		before := m.changed
		r := m.exprList(row)
		if out == nil && m.changed != before {
			out = make([][]scalar.Expr, len(rows))
			copy(out, rows[:i])
		}
		if out != nil {
			out[i] = r
		}
	}
	if out == nil {
		return rows
	}
	return out
}

// TransformExpressionsDown rewrites every expression embedded in the node's
// own fields, offering the rule to each expression before its operand
// sub-tree is rewritten top-down. Child nodes are not visited; use
// TransformAllExpressions for the whole tree. If nothing changes, the
// original node reference is returned.
func TransformExpressionsDown(n Node, rule Rule) Node {
	m := exprMapper{apply: func(e scalar.Expr) scalar.Expr {
		return scalar.TransformDown(e, rule)
	}}
	return n.mapExpressions(&m)
}

// TransformExpressionsUp is the bottom-up variant of
// TransformExpressionsDown: the rule is offered to each expression after its
// operand sub-tree has been rewritten.
func TransformExpressionsUp(n Node, rule Rule) Node {
	m := exprMapper{apply: func(e scalar.Expr) scalar.Expr {
		return scalar.TransformUp(e, rule)
	}}
	return n.mapExpressions(&m)
}

// TransformExpressions rewrites every expression embedded in the node's own
// fields. It delegates to TransformExpressionsDown, but makes no ordering
// promise; callers that require a specific order must use a directional
// variant explicitly.
func TransformExpressions(n Node, rule Rule) Node {
	return TransformExpressionsDown(n, rule)
}

// Expressions flattens, in encounter order, every expression reachable
// through the node's own fields (the same descent the rewrite performs).
func Expressions(n Node) []scalar.Expr {
	var exprs []scalar.Expr
	m := exprMapper{apply: func(e scalar.Expr) scalar.Expr {
		exprs = append(exprs, e)
		return e
	}}
	n.mapExpressions(&m)
	return exprs
}

// TransformAllExpressions applies TransformExpressions at every node of the
// tree.
func TransformAllExpressions(n Node, rule Rule) Node {
	return TransformDown(n, func(m Node) Node {
		return TransformExpressions(m, rule)
	})
}
