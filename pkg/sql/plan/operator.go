// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package plan

import "github.com/cockroachdb/redact"

// Operator describes the type of operation that a plan node performs.
type Operator int

// The relational operators.
const (
	UnknownOp Operator = iota
	ScanOp
	ValuesOp
	SelectOp
	ProjectOp
	JoinOp
	LimitOp
)

var opNames = [...]string{
	UnknownOp: "unknown",
	ScanOp:    "scan",
	ValuesOp:  "values",
	SelectOp:  "select",
	ProjectOp: "project",
	JoinOp:    "join",
	LimitOp:   "limit",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "invalid"
	}
	return opNames[op]
}

var _ redact.SafeValue = UnknownOp

// SafeValue implements the redact.SafeValue interface.
func (op Operator) SafeValue() {}
