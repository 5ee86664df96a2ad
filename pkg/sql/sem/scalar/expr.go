// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

// Package scalar defines the scalar expression language embedded in relational
// plan nodes: attributes (column references), constants, comparisons and the
// traversal and rewrite primitives over them. Expressions are immutable after
// construction; every rewrite produces a new expression, and a rewrite that
// changes nothing returns the original reference.
package scalar

import (
	"bytes"
	"fmt"

	"github.com/crestdb/crest/pkg/sql/types"
)

// Expr is a node representing a value computation. Implementations outside
// this package (e.g. the plan package's subquery expression) are allowed; they
// must obey the same immutability rules.
type Expr interface {
	fmt.Stringer

	// DataType returns the type of the value computed by the expression.
	DataType() types.T

	// Operands returns the expression's immediate sub-expressions. Callers
	// must not mutate the returned slice.
	Operands() []Expr

	// WithNewOperands constructs a copy of the expression with the given
	// operands, which must match Operands in length. The receiver is not
	// modified.
	WithNewOperands(operands []Expr) Expr

	// EncodeFingerprint appends a string encoding of the expression (including
	// its operands) to buf. Structurally equal expressions produce equal
	// encodings, and different structures produce different encodings.
	EncodeFingerprint(buf *bytes.Buffer)
}

// Rule is a partial rewrite: it returns the replacement expression and true,
// or false when the input is outside its domain. Inputs outside the domain
// pass through the rewrite unchanged.
type Rule func(Expr) (Expr, bool)

// Fingerprint returns the structural encoding of the expression. It serves as
// the expression's interning key: two expressions are structurally equal if
// and only if their fingerprints are equal.
func Fingerprint(e Expr) string {
	var buf bytes.Buffer
	e.EncodeFingerprint(&buf)
	return buf.String()
}

// Equal returns true if the two expressions are referentially or structurally
// equal. Either argument may be nil; two nils are equal.
func Equal(a, b Expr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return Fingerprint(a) == Fingerprint(b)
}

// Walk visits the expression tree in depth-first, left-to-right order,
// calling visit for each node before its operands.
func Walk(e Expr, visit func(Expr)) {
	visit(e)
	for _, op := range e.Operands() {
		Walk(op, visit)
	}
}

// References returns the set of attributes read by the expression.
func References(e Expr) AttrSet {
	var set AttrSet
	Walk(e, func(sub Expr) {
		if a, ok := sub.(*Attribute); ok {
			set.Add(a)
		}
	})
	return set
}

// TransformDown rewrites the expression by offering the rule to each node
// before its operand sub-tree is rewritten. If the rule changes nothing, the
// original expression reference is returned.
func TransformDown(e Expr, rule Rule) Expr {
	cur := e
	if repl, ok := rule(cur); ok && repl != nil && !Equal(repl, cur) {
		cur = repl
	}
	return mapOperands(cur, func(op Expr) Expr {
		return TransformDown(op, rule)
	})
}

// TransformUp rewrites the expression by offering the rule to each node after
// its operand sub-tree has been rewritten. If the rule changes nothing, the
// original expression reference is returned.
func TransformUp(e Expr, rule Rule) Expr {
	cur := mapOperands(e, func(op Expr) Expr {
		return TransformUp(op, rule)
	})
	if repl, ok := rule(cur); ok && repl != nil && !Equal(repl, cur) {
		return repl
	}
	return cur
}

// mapOperands applies f to each operand and reconstructs the expression via
// WithNewOperands only if at least one operand actually changed; otherwise the
// original expression is returned. Operands for which f is an identity keep
// their original references.
func mapOperands(e Expr, f func(Expr) Expr) Expr {
	ops := e.Operands()
	var newOps []Expr
	for i, op := range ops {
		r := f(op)
		if Equal(r, op) {
			r = op
		}
		if newOps == nil && r != op {
			newOps = make([]Expr, len(ops))
			copy(newOps, ops[:i])
		}
		if newOps != nil {
			newOps[i] = r
		}
	}
	if newOps == nil {
		return e
	}
	return e.WithNewOperands(newOps)
}
