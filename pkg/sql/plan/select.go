// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package plan

import (
	"github.com/crestdb/crest/pkg/sql/sem/scalar"
)

// Select filters its input to rows for which the filter predicate is true.
// Its output is its input's output.
type Select struct {
	Filter scalar.Expr
	Input  Node

	p nodeProps
}

var _ Node = &Select{}

// NewSelect constructs a filter over the input.
func NewSelect(filter scalar.Expr, input Node) *Select {
	return &Select{Filter: filter, Input: input}
}

// Op is part of the Node interface.
func (s *Select) Op() Operator { return SelectOp }

// Output is part of the Node interface.
func (s *Select) Output() []*scalar.Attribute { return s.Input.Output() }

// Children is part of the Node interface.
func (s *Select) Children() []Node { return []Node{s.Input} }

// WithNewChildren is part of the Node interface.
func (s *Select) WithNewChildren(children []Node) Node {
	checkArity(SelectOp, len(children), 1)
	return &Select{Filter: s.Filter, Input: children[0]}
}

// ValidConstraints is part of the Node interface: every row that survives the
// filter satisfies each of the filter's conjuncts, in addition to everything
// the input already guarantees.
func (s *Select) ValidConstraints() []scalar.Expr {
	return append(inheritedConstraints(s.Input), splitConjuncts(s.Filter)...)
}

// ProducedAttributes is part of the Node interface.
func (s *Select) ProducedAttributes() scalar.AttrSet { return scalar.AttrSet{} }

func (s *Select) mapExpressions(m *exprMapper) Node {
	filter := m.expr(s.Filter)
	if !m.changed {
		return s
	}
	return &Select{Filter: filter, Input: s.Input}
}

func (s *Select) props() *nodeProps { return &s.p }
