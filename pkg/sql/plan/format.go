// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package plan

import (
	"fmt"

	"github.com/crestdb/crest/pkg/util/treeprinter"
)

// Format returns an indented tree representation of the plan for testing and
// debugging. A node whose expressions reference attributes that nothing
// supplies is marked with a "!" prefix, unless it is a leaf: a leaf's
// attributes have implicit provenance (e.g. a raw data source) and are never
// flagged.
func Format(n Node) string {
	tp := treeprinter.New()
	formatNode(n, tp)
	return tp.String()
}

func formatNode(n Node, tp treeprinter.Node) {
	title := nodeTitle(n)
	if len(n.Children()) > 0 && !MissingInput(n).Empty() {
		title = "!" + title
	}
	child := tp.Child(title)
	child.Childf("columns: %s", SchemaString(n))
	switch t := n.(type) {
	case *Select:
		child.Childf("filter: %s", t.Filter)
	case *Join:
		if t.On != nil {
			child.Childf("on: %s", t.On)
		}
	case *Limit:
		child.Childf("count: %d", t.Count)
	}
	for _, c := range n.Children() {
		formatNode(c, child)
	}
	for _, sq := range InnerChildren(n) {
		formatNode(sq, child.Child("subquery"))
	}
}

func nodeTitle(n Node) string {
	switch t := n.(type) {
	case *Scan:
		return fmt.Sprintf("scan %s", t.Table)
	case *Join:
		return fmt.Sprintf("%s-join", t.Type)
	default:
		return n.Op().String()
	}
}
