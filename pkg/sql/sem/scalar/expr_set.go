// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package scalar

import (
	"bytes"

	"github.com/cockroachdb/errors"
)

// ExprSet is a set of expressions deduplicated by canonical form:
// semantically-equivalent expressions, including commuted forms, collapse to
// one member. The first-added representative of each canonical form is
// retained, in insertion order. The zero value is a usable empty set.
type ExprSet struct {
	keys  map[string]struct{}
	exprs []Expr
}

// MakeExprSet returns a set initialized with the given expressions.
func MakeExprSet(exprs ...Expr) ExprSet {
	var res ExprSet
	for _, e := range exprs {
		res.Add(e)
	}
	return res
}

func exprKey(e Expr) string {
	return Fingerprint(Canonicalize(e))
}

// Add adds an expression to the set. No-op if an expression with the same
// canonical form is already in the set.
func (s *ExprSet) Add(e Expr) {
	if e == nil {
		panic(errors.AssertionFailedf("cannot add nil expression"))
	}
	key := exprKey(e)
	if _, ok := s.keys[key]; ok {
		return
	}
	if s.keys == nil {
		s.keys = make(map[string]struct{})
	}
	s.keys[key] = struct{}{}
	s.exprs = append(s.exprs, e)
}

// Contains returns true if the set contains an expression with the same
// canonical form.
func (s ExprSet) Contains(e Expr) bool {
	_, ok := s.keys[exprKey(e)]
	return ok
}

// Empty returns true if the set is empty.
func (s ExprSet) Empty() bool { return len(s.exprs) == 0 }

// Len returns the number of canonical forms in the set.
func (s ExprSet) Len() int { return len(s.exprs) }

// Ordered returns the representative expressions in insertion order. Callers
// must not mutate the returned slice.
func (s ExprSet) Ordered() []Expr { return s.exprs }

// UnionWith adds all the expressions from rhs to this set.
func (s *ExprSet) UnionWith(rhs ExprSet) {
	for _, e := range rhs.exprs {
		s.Add(e)
	}
}

// Equals returns true if the two sets contain the same canonical forms.
func (s ExprSet) Equals(rhs ExprSet) bool {
	if len(s.keys) != len(rhs.keys) {
		return false
	}
	for k := range s.keys {
		if _, ok := rhs.keys[k]; !ok {
			return false
		}
	}
	return true
}

func (s ExprSet) String() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, e := range s.exprs {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(e.String())
	}
	buf.WriteByte(']')
	return buf.String()
}
