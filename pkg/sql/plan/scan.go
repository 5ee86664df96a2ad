// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package plan

import (
	"github.com/crestdb/crest/pkg/sql/sem/scalar"
)

// Scan reads rows from a stored table. It is a leaf: the provenance of its
// attributes is the table itself.
type Scan struct {
	Table string
	Cols  []*scalar.Attribute

	// Hints carries storage-layer hints keyed by name. The rewrite engine
	// passes it through verbatim.
	Hints map[string]string

	p nodeProps
}

var _ Node = &Scan{}

// NewScan constructs a scan over the given table columns.
func NewScan(table string, cols []*scalar.Attribute) *Scan {
	return &Scan{Table: table, Cols: cols}
}

// Op is part of the Node interface.
func (s *Scan) Op() Operator { return ScanOp }

// Output is part of the Node interface.
func (s *Scan) Output() []*scalar.Attribute { return s.Cols }

// Children is part of the Node interface.
func (s *Scan) Children() []Node { return nil }

// WithNewChildren is part of the Node interface.
func (s *Scan) WithNewChildren(children []Node) Node {
	checkArity(ScanOp, len(children), 0)
	return s
}

// ValidConstraints is part of the Node interface.
func (s *Scan) ValidConstraints() []scalar.Expr { return nil }

// ProducedAttributes is part of the Node interface: a scan synthesizes all of
// its columns.
func (s *Scan) ProducedAttributes() scalar.AttrSet {
	return scalar.MakeAttrSet(s.Cols...)
}

func (s *Scan) mapExpressions(m *exprMapper) Node {
	// Cols are schema descriptors and Hints is a mapping; neither is an
	// expression container.
	return s
}

func (s *Scan) props() *nodeProps { return &s.p }
