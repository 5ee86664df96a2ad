// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

// Package types defines the column data-type descriptors used by the plan
// layer. Type descriptors are pure metadata: the rewrite engine never treats
// them as expression containers.
package types

import "github.com/cockroachdb/redact"

// T identifies a column data type.
type T int

var _ redact.SafeValue = Unknown

// The supported data types. Unknown is the zero value and is used for
// expressions whose type has not been resolved.
const (
	Unknown T = iota
	Bool
	Int
	Float
	Decimal
	String
	Bytes
	Timestamp
)

var typeNames = [...]string{
	Unknown:   "unknown",
	Bool:      "bool",
	Int:       "int",
	Float:     "float",
	Decimal:   "decimal",
	String:    "string",
	Bytes:     "bytes",
	Timestamp: "timestamp",
}

func (t T) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "invalid"
	}
	return typeNames[t]
}

// SafeValue implements the redact.SafeValue interface.
func (t T) SafeValue() {}
