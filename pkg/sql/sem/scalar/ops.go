// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package scalar

import (
	"bytes"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/crestdb/crest/pkg/sql/types"
)

// ConstExpr is a typed literal value.
type ConstExpr struct {
	Value interface{}
	Typ   types.T
}

var _ Expr = &ConstExpr{}

// NewConst constructs a constant expression.
func NewConst(value interface{}, typ types.T) *ConstExpr {
	return &ConstExpr{Value: value, Typ: typ}
}

// DataType is part of the Expr interface.
func (c *ConstExpr) DataType() types.T { return c.Typ }

// Operands is part of the Expr interface.
func (c *ConstExpr) Operands() []Expr { return nil }

// WithNewOperands is part of the Expr interface.
func (c *ConstExpr) WithNewOperands(operands []Expr) Expr {
	if len(operands) != 0 {
		panic(errors.AssertionFailedf("constant has no operands"))
	}
	return c
}

// EncodeFingerprint is part of the Expr interface.
func (c *ConstExpr) EncodeFingerprint(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "(const:%s %v)", c.Typ, c.Value)
}

func (c *ConstExpr) String() string {
	if s, ok := c.Value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", c.Value)
}

// AndExpr is the boolean conjunction of two operands.
type AndExpr struct {
	Left  Expr
	Right Expr
}

var _ Expr = &AndExpr{}

// NewAnd constructs a conjunction.
func NewAnd(left, right Expr) *AndExpr {
	return &AndExpr{Left: left, Right: right}
}

// DataType is part of the Expr interface.
func (a *AndExpr) DataType() types.T { return types.Bool }

// Operands is part of the Expr interface.
func (a *AndExpr) Operands() []Expr { return []Expr{a.Left, a.Right} }

// WithNewOperands is part of the Expr interface.
func (a *AndExpr) WithNewOperands(operands []Expr) Expr {
	if len(operands) != 2 {
		panic(errors.AssertionFailedf("AND requires 2 operands, got %d", len(operands)))
	}
	return &AndExpr{Left: operands[0], Right: operands[1]}
}

// EncodeFingerprint is part of the Expr interface.
func (a *AndExpr) EncodeFingerprint(buf *bytes.Buffer) {
	buf.WriteString("(and ")
	a.Left.EncodeFingerprint(buf)
	buf.WriteByte(' ')
	a.Right.EncodeFingerprint(buf)
	buf.WriteByte(')')
}

func (a *AndExpr) String() string {
	return fmt.Sprintf("(%s AND %s)", a.Left, a.Right)
}

// IsNotNullExpr evaluates to true if its operand is not NULL. The constraint
// engine derives these from comparisons.
type IsNotNullExpr struct {
	Operand Expr
}

var _ Expr = &IsNotNullExpr{}

// NewIsNotNull constructs an IS NOT NULL predicate.
func NewIsNotNull(operand Expr) *IsNotNullExpr {
	return &IsNotNullExpr{Operand: operand}
}

// DataType is part of the Expr interface.
func (n *IsNotNullExpr) DataType() types.T { return types.Bool }

// Operands is part of the Expr interface.
func (n *IsNotNullExpr) Operands() []Expr { return []Expr{n.Operand} }

// WithNewOperands is part of the Expr interface.
func (n *IsNotNullExpr) WithNewOperands(operands []Expr) Expr {
	if len(operands) != 1 {
		panic(errors.AssertionFailedf("IS NOT NULL requires 1 operand, got %d", len(operands)))
	}
	return &IsNotNullExpr{Operand: operands[0]}
}

// EncodeFingerprint is part of the Expr interface.
func (n *IsNotNullExpr) EncodeFingerprint(buf *bytes.Buffer) {
	buf.WriteString("(isnotnull ")
	n.Operand.EncodeFingerprint(buf)
	buf.WriteByte(')')
}

func (n *IsNotNullExpr) String() string {
	return fmt.Sprintf("%s IS NOT NULL", n.Operand)
}
