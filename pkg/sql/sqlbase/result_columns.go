// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

// Package sqlbase holds schema descriptors shared between the plan layer and
// the layers above it.
package sqlbase

import (
	"bytes"
	"fmt"

	"github.com/crestdb/crest/pkg/sql/sem/scalar"
	"github.com/crestdb/crest/pkg/sql/types"
)

// ResultColumn contains the name, type and nullability of a result column.
type ResultColumn struct {
	Name     string
	Typ      types.T
	Nullable bool
}

// ResultColumns is the schema of a plan node: one descriptor per output
// attribute, in output order.
type ResultColumns []ResultColumn

// ResultColumnsFromAttrs converts a list of attributes to a ResultColumns
// descriptor list, one-to-one and in order.
func ResultColumnsFromAttrs(attrs []*scalar.Attribute) ResultColumns {
	cols := make(ResultColumns, len(attrs))
	for i, a := range attrs {
		cols[i] = ResultColumn{
			Name:     a.Name(),
			Typ:      a.DataType(),
			Nullable: a.Nullable(),
		}
	}
	return cols
}

// String formats the schema as "(a int, b string null)". Nullable columns are
// tagged; non-nullable columns are not.
func (cols ResultColumns) String() string {
	var buf bytes.Buffer
	buf.WriteByte('(')
	for i, c := range cols {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s %s", c.Name, c.Typ)
		if c.Nullable {
			buf.WriteString(" null")
		}
	}
	buf.WriteByte(')')
	return buf.String()
}
