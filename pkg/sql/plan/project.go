// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package plan

import (
	"github.com/cockroachdb/errors"
	"github.com/crestdb/crest/pkg/sql/sem/scalar"
)

// Project computes a new set of output columns from its input. Exprs[i]
// computes the column described by Cols[i]; a projection that simply
// forwards an input column uses that attribute itself as the expression.
type Project struct {
	Exprs []scalar.Expr
	// Cols describes the output columns; they are attribute descriptors, not
	// rewrite targets.
	Cols  []*scalar.Attribute
	Input Node

	p nodeProps
}

var _ Node = &Project{}

// NewProject constructs a projection. The expression and column lists must
// be parallel.
func NewProject(exprs []scalar.Expr, cols []*scalar.Attribute, input Node) *Project {
	if len(exprs) != len(cols) {
		panic(errors.AssertionFailedf(
			"project has %d expressions for %d columns", len(exprs), len(cols)))
	}
	return &Project{Exprs: exprs, Cols: cols, Input: input}
}

// Op is part of the Node interface.
func (pr *Project) Op() Operator { return ProjectOp }

// Output is part of the Node interface.
func (pr *Project) Output() []*scalar.Attribute { return pr.Cols }

// Children is part of the Node interface.
func (pr *Project) Children() []Node { return []Node{pr.Input} }

// WithNewChildren is part of the Node interface.
func (pr *Project) WithNewChildren(children []Node) Node {
	checkArity(ProjectOp, len(children), 1)
	return &Project{Exprs: pr.Exprs, Cols: pr.Cols, Input: children[0]}
}

// ValidConstraints is part of the Node interface: the input's guarantees
// still hold for each row; relevance filtering drops the ones that mention
// columns the projection discards.
func (pr *Project) ValidConstraints() []scalar.Expr {
	return inheritedConstraints(pr.Input)
}

// ProducedAttributes is part of the Node interface: the synthesized output
// columns are the projection's own. Columns passed through unchanged keep
// their input attribute and are not produced here.
func (pr *Project) ProducedAttributes() scalar.AttrSet {
	var produced scalar.AttrSet
	for i, col := range pr.Cols {
		if a, ok := pr.Exprs[i].(*scalar.Attribute); ok && a.ID() == col.ID() {
			continue
		}
		produced.Add(col)
	}
	return produced
}

func (pr *Project) mapExpressions(m *exprMapper) Node {
	exprs := m.exprList(pr.Exprs)
	if !m.changed {
		return pr
	}
	return &Project{Exprs: exprs, Cols: pr.Cols, Input: pr.Input}
}

func (pr *Project) props() *nodeProps { return &pr.p }
