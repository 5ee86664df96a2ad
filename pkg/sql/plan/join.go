// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package plan

import (
	"github.com/cockroachdb/redact"
	"github.com/crestdb/crest/pkg/sql/sem/scalar"
)

// JoinType identifies which rows of each input a join preserves.
type JoinType int

// The supported join types.
const (
	InnerJoin JoinType = iota
	LeftOuterJoin
	RightOuterJoin
	FullOuterJoin
)

var joinTypeNames = [...]string{
	InnerJoin:      "inner",
	LeftOuterJoin:  "left-outer",
	RightOuterJoin: "right-outer",
	FullOuterJoin:  "full-outer",
}

func (t JoinType) String() string { return joinTypeNames[t] }

var _ redact.SafeValue = InnerJoin

// SafeValue implements the redact.SafeValue interface.
func (t JoinType) SafeValue() {}

// Join combines rows from its two inputs. Its output is the concatenation of
// the left and right outputs.
type Join struct {
	Type  JoinType
	Left  Node
	Right Node
	// On is the join predicate; nil means a cross join.
	On scalar.Expr

	p nodeProps
}

var _ Node = &Join{}

// NewJoin constructs a join. on may be nil.
func NewJoin(typ JoinType, left, right Node, on scalar.Expr) *Join {
	return &Join{Type: typ, Left: left, Right: right, On: on}
}

// Op is part of the Node interface.
func (j *Join) Op() Operator { return JoinOp }

// Output is part of the Node interface.
func (j *Join) Output() []*scalar.Attribute {
	left := j.Left.Output()
	right := j.Right.Output()
	out := make([]*scalar.Attribute, 0, len(left)+len(right))
	out = append(out, left...)
	return append(out, right...)
}

// Children is part of the Node interface.
func (j *Join) Children() []Node { return []Node{j.Left, j.Right} }

// WithNewChildren is part of the Node interface.
func (j *Join) WithNewChildren(children []Node) Node {
	checkArity(JoinOp, len(children), 2)
	return &Join{Type: j.Type, Left: children[0], Right: children[1], On: j.On}
}

// ValidConstraints is part of the Node interface. An inner join preserves
// both inputs' guarantees and additionally satisfies each conjunct of the ON
// predicate; an outer join null-extends one side, keeping only the preserved
// side's guarantees.
func (j *Join) ValidConstraints() []scalar.Expr {
	switch j.Type {
	case InnerJoin:
		res := append(inheritedConstraints(j.Left), inheritedConstraints(j.Right)...)
		if j.On != nil {
			res = append(res, splitConjuncts(j.On)...)
		}
		return res
	case LeftOuterJoin:
		return inheritedConstraints(j.Left)
	case RightOuterJoin:
		return inheritedConstraints(j.Right)
	default:
		return nil
	}
}

// ProducedAttributes is part of the Node interface.
func (j *Join) ProducedAttributes() scalar.AttrSet { return scalar.AttrSet{} }

func (j *Join) mapExpressions(m *exprMapper) Node {
	on := m.expr(j.On)
	if !m.changed {
		return j
	}
	return &Join{Type: j.Type, Left: j.Left, Right: j.Right, On: on}
}

func (j *Join) props() *nodeProps { return &j.p }
