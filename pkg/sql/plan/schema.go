// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package plan

import (
	"github.com/crestdb/crest/pkg/sql/sqlbase"
)

// Schema returns the node's output schema: one descriptor per output
// attribute, in output order. The result is memoized per node instance.
func Schema(n Node) sqlbase.ResultColumns {
	p := n.props()
	p.schemaOnce.Do(func() {
		p.schema = sqlbase.ResultColumnsFromAttrs(n.Output())
	})
	return p.schema
}

// SchemaString returns the display form of the node's output schema.
func SchemaString(n Node) string {
	return Schema(n).String()
}
