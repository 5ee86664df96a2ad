// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package plan

import (
	"github.com/crestdb/crest/pkg/sql/sem/scalar"
)

// Limit passes through at most Count rows of its input.
type Limit struct {
	Count int64
	Input Node

	p nodeProps
}

var _ Node = &Limit{}

// NewLimit constructs a limit over the input.
func NewLimit(count int64, input Node) *Limit {
	return &Limit{Count: count, Input: input}
}

// Op is part of the Node interface.
func (l *Limit) Op() Operator { return LimitOp }

// Output is part of the Node interface.
func (l *Limit) Output() []*scalar.Attribute { return l.Input.Output() }

// Children is part of the Node interface.
func (l *Limit) Children() []Node { return []Node{l.Input} }

// WithNewChildren is part of the Node interface.
func (l *Limit) WithNewChildren(children []Node) Node {
	checkArity(LimitOp, len(children), 1)
	return &Limit{Count: l.Count, Input: children[0]}
}

// ValidConstraints is part of the Node interface: dropping rows invalidates
// nothing the input guarantees.
func (l *Limit) ValidConstraints() []scalar.Expr {
	return inheritedConstraints(l.Input)
}

// ProducedAttributes is part of the Node interface.
func (l *Limit) ProducedAttributes() scalar.AttrSet { return scalar.AttrSet{} }

func (l *Limit) mapExpressions(m *exprMapper) Node {
	// Count is not an expression; there is nothing to rewrite.
	return l
}

func (l *Limit) props() *nodeProps { return &l.p }
