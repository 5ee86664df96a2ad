// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package scalar

import (
	"bytes"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/crestdb/crest/pkg/sql/types"
)

// ComparisonOp identifies a binary comparison operator.
type ComparisonOp int

// The supported comparison operators.
const (
	EQ ComparisonOp = iota
	LT
	LE
	GT
	GE
)

var _ redact.SafeValue = EQ

// SafeValue implements the redact.SafeValue interface.
func (op ComparisonOp) SafeValue() {}

var cmpOpNames = [...]string{
	EQ: "=",
	LT: "<",
	LE: "<=",
	GT: ">",
	GE: ">=",
}

var cmpOpTags = [...]string{
	EQ: "eq",
	LT: "lt",
	LE: "le",
	GT: "gt",
	GE: "ge",
}

func (op ComparisonOp) String() string { return cmpOpNames[op] }

// ComparisonExpr is a binary comparison between two operands. Comparisons are
// the shapes pattern-matched by the constraint engine: a comparison that
// evaluates to true requires both operands to be non-null.
type ComparisonExpr struct {
	Op    ComparisonOp
	Left  Expr
	Right Expr
}

var _ Expr = &ComparisonExpr{}

// NewComparison constructs a comparison expression.
func NewComparison(op ComparisonOp, left, right Expr) *ComparisonExpr {
	return &ComparisonExpr{Op: op, Left: left, Right: right}
}

// DataType is part of the Expr interface.
func (c *ComparisonExpr) DataType() types.T { return types.Bool }

// Operands is part of the Expr interface.
func (c *ComparisonExpr) Operands() []Expr { return []Expr{c.Left, c.Right} }

// WithNewOperands is part of the Expr interface.
func (c *ComparisonExpr) WithNewOperands(operands []Expr) Expr {
	if len(operands) != 2 {
		panic(errors.AssertionFailedf("comparison requires 2 operands, got %d", len(operands)))
	}
	return &ComparisonExpr{Op: c.Op, Left: operands[0], Right: operands[1]}
}

// EncodeFingerprint is part of the Expr interface.
func (c *ComparisonExpr) EncodeFingerprint(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "(%s ", cmpOpTags[c.Op])
	c.Left.EncodeFingerprint(buf)
	buf.WriteByte(' ')
	c.Right.EncodeFingerprint(buf)
	buf.WriteByte(')')
}

func (c *ComparisonExpr) String() string {
	return fmt.Sprintf("%s %s %s", c.Left, c.Op, c.Right)
}
