// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package plan

import (
	"bytes"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/crestdb/crest/pkg/sql/sem/scalar"
	"github.com/crestdb/crest/pkg/sql/types"
)

// SubqueryExpr is a scalar expression embedding an independently-plannable
// nested plan. It lives in this package rather than in scalar because it
// carries a plan node; it implements the scalar expression interface so it
// can appear anywhere an expression can.
//
// The embedded plan is a display/traversal child only: it never contributes
// to the host node's input attributes, so a column provided only by a
// subquery still counts as missing input.
type SubqueryExpr struct {
	Plan Node
}

var _ scalar.Expr = &SubqueryExpr{}

// NewSubquery constructs a subquery expression around the given plan.
func NewSubquery(p Node) *SubqueryExpr {
	if p == nil {
		panic(errors.AssertionFailedf("subquery requires a plan"))
	}
	return &SubqueryExpr{Plan: p}
}

// DataType is part of the scalar.Expr interface. A one-column subquery has
// that column's type; anything else is left unresolved.
func (s *SubqueryExpr) DataType() types.T {
	if out := s.Plan.Output(); len(out) == 1 {
		return out[0].DataType()
	}
	return types.Unknown
}

// Operands is part of the scalar.Expr interface. The embedded plan is not an
// operand: expression traversal stops at the subquery boundary.
func (s *SubqueryExpr) Operands() []scalar.Expr { return nil }

// WithNewOperands is part of the scalar.Expr interface.
func (s *SubqueryExpr) WithNewOperands(operands []scalar.Expr) scalar.Expr {
	if len(operands) != 0 {
		panic(errors.AssertionFailedf("subquery has no operands"))
	}
	return s
}

// EncodeFingerprint is part of the scalar.Expr interface. Subqueries are
// identified by plan instance; canonicalization does not look inside them.
func (s *SubqueryExpr) EncodeFingerprint(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "(subquery:%p)", s.Plan)
}

func (s *SubqueryExpr) String() string { return "subquery" }

// Subqueries walks every expression embedded in the node's own fields,
// depth-first and left-to-right to unbounded depth, and returns the plan of
// each subquery occurrence in encounter order. Duplicates are retained.
func Subqueries(n Node) []Node {
	var plans []Node
	for _, e := range Expressions(n) {
		scalar.Walk(e, func(sub scalar.Expr) {
			if sq, ok := sub.(*SubqueryExpr); ok {
				plans = append(plans, sq.Plan)
			}
		})
	}
	return plans
}

// InnerChildren exposes the node's subquery plans as additional
// display/traversal-only children, distinct from the structural child set
// used by the attribute algebra.
func InnerChildren(n Node) []Node {
	return Subqueries(n)
}
