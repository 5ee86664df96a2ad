// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package scalar

import (
	"github.com/cockroachdb/errors"
	"github.com/crestdb/crest/pkg/util"
)

// AttrSet is a set of attributes deduplicated by id. Membership tests run on
// a FastIntSet of ids; the attributes themselves are kept so that callers can
// recover names, types and nullability. The zero value is a usable empty set.
type AttrSet struct {
	ids   util.FastIntSet
	attrs map[AttrID]*Attribute
}

// MakeAttrSet returns a set initialized with the given attributes.
func MakeAttrSet(attrs ...*Attribute) AttrSet {
	var res AttrSet
	for _, a := range attrs {
		res.Add(a)
	}
	return res
}

// Add adds an attribute to the set. No-op if an attribute with the same id is
// already in the set.
func (s *AttrSet) Add(a *Attribute) {
	if a == nil || a.id <= 0 {
		panic(errors.AssertionFailedf("attribute must have a positive id"))
	}
	if s.ids.Contains(int(a.id)) {
		return
	}
	s.ids.Add(int(a.id))
	if s.attrs == nil {
		s.attrs = make(map[AttrID]*Attribute)
	}
	s.attrs[a.id] = a
}

// Contains returns true if the set contains an attribute with the same id.
func (s AttrSet) Contains(a *Attribute) bool {
	return a != nil && s.ids.Contains(int(a.id))
}

// ContainsID returns true if the set contains an attribute with the given id.
func (s AttrSet) ContainsID(id AttrID) bool {
	return s.ids.Contains(int(id))
}

// Empty returns true if the set is empty.
func (s AttrSet) Empty() bool { return s.ids.Empty() }

// Len returns the number of attributes in the set.
func (s AttrSet) Len() int { return s.ids.Len() }

// Copy returns a copy of s which can be modified independently.
func (s AttrSet) Copy() AttrSet {
	c := AttrSet{ids: s.ids.Copy()}
	if len(s.attrs) > 0 {
		c.attrs = make(map[AttrID]*Attribute, len(s.attrs))
		for id, a := range s.attrs {
			c.attrs[id] = a
		}
	}
	return c
}

// UnionWith adds all the attributes from rhs to this set.
func (s *AttrSet) UnionWith(rhs AttrSet) {
	for _, a := range rhs.attrs {
		s.Add(a)
	}
}

// Union returns the union of s and rhs as a new set.
func (s AttrSet) Union(rhs AttrSet) AttrSet {
	r := s.Copy()
	r.UnionWith(rhs)
	return r
}

// DifferenceWith removes any attributes in rhs from this set. Only exact id
// matches are removed; a same-named attribute with a different id stays.
func (s *AttrSet) DifferenceWith(rhs AttrSet) {
	s.ids.DifferenceWith(rhs.ids)
	for id := range rhs.attrs {
		delete(s.attrs, id)
	}
}

// Difference returns the attributes of s that are not in rhs as a new set.
func (s AttrSet) Difference(rhs AttrSet) AttrSet {
	r := s.Copy()
	r.DifferenceWith(rhs)
	return r
}

// Intersects returns true if s has any attributes in common with rhs.
func (s AttrSet) Intersects(rhs AttrSet) bool {
	return s.ids.Intersects(rhs.ids)
}

// SubsetOf returns true if rhs contains all the attributes in s.
func (s AttrSet) SubsetOf(rhs AttrSet) bool {
	return s.ids.SubsetOf(rhs.ids)
}

// Equals returns true if the two sets contain the same attribute ids.
func (s AttrSet) Equals(rhs AttrSet) bool {
	return s.ids.Equals(rhs.ids)
}

// ForEach calls a function for each attribute in the set, in increasing id
// order.
func (s AttrSet) ForEach(f func(a *Attribute)) {
	s.ids.ForEach(func(id int) {
		f(s.attrs[AttrID(id)])
	})
}

// Ordered returns the attributes in the set, in increasing id order.
func (s AttrSet) Ordered() []*Attribute {
	if s.Empty() {
		return nil
	}
	res := make([]*Attribute, 0, s.Len())
	s.ForEach(func(a *Attribute) {
		res = append(res, a)
	})
	return res
}

// String returns the ids in the set in FastIntSet range notation, e.g.
// "(1-3,5)".
func (s AttrSet) String() string {
	return s.ids.String()
}
