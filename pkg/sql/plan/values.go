// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package plan

import (
	"github.com/cockroachdb/errors"
	"github.com/crestdb/crest/pkg/sql/sem/scalar"
)

// Values produces a fixed number of rows from embedded expressions. Each row
// holds one expression per output column.
type Values struct {
	// Cols describes the produced columns; it is a schema descriptor, not a
	// rewrite target.
	Cols []*scalar.Attribute
	Rows [][]scalar.Expr

	p nodeProps
}

var _ Node = &Values{}

// NewValues constructs a values node. Every row must match the column count.
func NewValues(cols []*scalar.Attribute, rows [][]scalar.Expr) *Values {
	for _, row := range rows {
		if len(row) != len(cols) {
			panic(errors.AssertionFailedf(
				"values row has %d expressions, expected %d", len(row), len(cols)))
		}
	}
	return &Values{Cols: cols, Rows: rows}
}

// Op is part of the Node interface.
func (v *Values) Op() Operator { return ValuesOp }

// Output is part of the Node interface.
func (v *Values) Output() []*scalar.Attribute { return v.Cols }

// Children is part of the Node interface.
func (v *Values) Children() []Node { return nil }

// WithNewChildren is part of the Node interface.
func (v *Values) WithNewChildren(children []Node) Node {
	checkArity(ValuesOp, len(children), 0)
	return v
}

// ValidConstraints is part of the Node interface.
func (v *Values) ValidConstraints() []scalar.Expr { return nil }

// ProducedAttributes is part of the Node interface: a values node synthesizes
// all of its columns.
func (v *Values) ProducedAttributes() scalar.AttrSet {
	return scalar.MakeAttrSet(v.Cols...)
}

func (v *Values) mapExpressions(m *exprMapper) Node {
	rows := m.exprMatrix(v.Rows)
	if !m.changed {
		return v
	}
	return &Values{Cols: v.Cols, Rows: rows}
}

func (v *Values) props() *nodeProps { return &v.p }
