// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package scalar

import (
	"bytes"
	"fmt"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/crestdb/crest/pkg/sql/types"
)

// AttrID uniquely identifies the usage of a column within the scope of a
// query. AttrID 0 is reserved to mean "unknown column".
type AttrID int32

// attrIDCounter allocates attribute ids for the process. Two attributes with
// the same name but different ids are different columns for all set purposes.
var attrIDCounter atomic.Int32

// Attribute is a reference to a column: an expression that evaluates to the
// column's value for the current row. Identity is carried by the id, not the
// name; constructing a new attribute always allocates a fresh id.
type Attribute struct {
	name     string
	typ      types.T
	nullable bool
	id       AttrID
}

var _ Expr = &Attribute{}

// NewAttribute constructs an attribute with a fresh id.
func NewAttribute(name string, typ types.T, nullable bool) *Attribute {
	return &Attribute{
		name:     name,
		typ:      typ,
		nullable: nullable,
		id:       AttrID(attrIDCounter.Add(1)),
	}
}

// Name returns the display name of the column.
func (a *Attribute) Name() string { return a.name }

// ID returns the identity token of the attribute.
func (a *Attribute) ID() AttrID { return a.id }

// Nullable returns true if the column can hold NULL values.
func (a *Attribute) Nullable() bool { return a.nullable }

// DataType is part of the Expr interface.
func (a *Attribute) DataType() types.T { return a.typ }

// Operands is part of the Expr interface.
func (a *Attribute) Operands() []Expr { return nil }

// WithNewOperands is part of the Expr interface.
func (a *Attribute) WithNewOperands(operands []Expr) Expr {
	if len(operands) != 0 {
		panic(errors.AssertionFailedf("attribute has no operands"))
	}
	return a
}

// EncodeFingerprint is part of the Expr interface.
func (a *Attribute) EncodeFingerprint(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "@%d", a.id)
}

// String returns the display name only; identity lives in the fingerprint.
// Two same-named attributes with different ids render identically.
func (a *Attribute) String() string {
	return a.name
}
