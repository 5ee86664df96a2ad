// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package util

import (
	"bytes"
	"fmt"
	"sort"
)

// smallCutoff is the size of the small bitmap. Values in [0, smallCutoff) are
// stored in the bitmap; anything else spills to the large set.
const smallCutoff = 64

// FastIntSet keeps track of a set of integers. It is optimized for the case
// when sets are small and contain only values in [0, 64); in that regime it
// requires no allocations. The zero value is a usable empty set.
type FastIntSet struct {
	small uint64
	large map[int]struct{}
}

// MakeFastIntSet returns a set initialized with the given values.
func MakeFastIntSet(vals ...int) FastIntSet {
	var res FastIntSet
	for _, v := range vals {
		res.Add(v)
	}
	return res
}

func (s *FastIntSet) fitsInSmall(i int) bool {
	return i >= 0 && i < smallCutoff
}

// Add adds a value to the set. No-op if the value is already in the set.
func (s *FastIntSet) Add(i int) {
	if s.fitsInSmall(i) {
		s.small |= 1 << uint64(i)
		return
	}
	if s.large == nil {
		s.large = make(map[int]struct{})
	}
	s.large[i] = struct{}{}
}

// AddRange adds values 'from' up to 'to' (inclusively) to the set.
func (s *FastIntSet) AddRange(from, to int) {
	for i := from; i <= to; i++ {
		s.Add(i)
	}
}

// Remove removes a value from the set. No-op if the value is not in the set.
func (s *FastIntSet) Remove(i int) {
	if s.fitsInSmall(i) {
		s.small &^= 1 << uint64(i)
		return
	}
	delete(s.large, i)
}

// Contains returns true if the set contains the value.
func (s FastIntSet) Contains(i int) bool {
	if s.fitsInSmall(i) {
		return s.small&(1<<uint64(i)) != 0
	}
	_, ok := s.large[i]
	return ok
}

// Empty returns true if the set is empty.
func (s FastIntSet) Empty() bool {
	return s.small == 0 && len(s.large) == 0
}

// Len returns the number of the elements in the set.
func (s FastIntSet) Len() int {
	n := len(s.large)
	for v := s.small; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Next returns the first value in the set which is >= startVal. If there is
// no value, the second return value is false.
func (s FastIntSet) Next(startVal int) (int, bool) {
	for i := startVal; i < smallCutoff; i++ {
		if i >= 0 && s.small&(1<<uint64(i)) != 0 {
			return i, true
		}
	}
	res := 0
	found := false
	for v := range s.large {
		if v >= startVal && (!found || v < res) {
			res, found = v, true
		}
	}
	return res, found
}

// ForEach calls a function for each value in the set (in increasing order).
func (s FastIntSet) ForEach(f func(i int)) {
	for _, v := range s.Ordered() {
		f(v)
	}
}

// Ordered returns a slice with all the integers in the set, in increasing
// order.
func (s FastIntSet) Ordered() []int {
	if s.Empty() {
		return nil
	}
	result := make([]int, 0, s.Len())
	for i := 0; i < smallCutoff; i++ {
		if s.small&(1<<uint64(i)) != 0 {
			result = append(result, i)
		}
	}
	for v := range s.large {
		result = append(result, v)
	}
	sort.Ints(result)
	return result
}

// Copy returns a copy of s which can be modified independently.
func (s FastIntSet) Copy() FastIntSet {
	c := FastIntSet{small: s.small}
	if len(s.large) > 0 {
		c.large = make(map[int]struct{}, len(s.large))
		for v := range s.large {
			c.large[v] = struct{}{}
		}
	}
	return c
}

// CopyFrom sets the receiver to a copy of other, which can then be modified
// independently.
func (s *FastIntSet) CopyFrom(other FastIntSet) {
	*s = other.Copy()
}

// Shift generates a new set which contains elements i+delta for elements i in
// the original set.
func (s *FastIntSet) Shift(delta int) {
	shifted := MakeFastIntSet()
	s.ForEach(func(i int) {
		shifted.Add(i + delta)
	})
	*s = shifted
}

// UnionWith adds all the elements from rhs to this set.
func (s *FastIntSet) UnionWith(rhs FastIntSet) {
	s.small |= rhs.small
	for v := range rhs.large {
		s.Add(v)
	}
}

// Union returns the union of s and rhs as a new set.
func (s FastIntSet) Union(rhs FastIntSet) FastIntSet {
	r := s.Copy()
	r.UnionWith(rhs)
	return r
}

// IntersectionWith removes any elements not in rhs from this set.
func (s *FastIntSet) IntersectionWith(rhs FastIntSet) {
	s.small &= rhs.small
	for v := range s.large {
		if !rhs.Contains(v) {
			delete(s.large, v)
		}
	}
}

// Intersection returns the intersection of s and rhs as a new set.
func (s FastIntSet) Intersection(rhs FastIntSet) FastIntSet {
	r := s.Copy()
	r.IntersectionWith(rhs)
	return r
}

// Intersects returns true if s has any elements in common with rhs.
func (s FastIntSet) Intersects(rhs FastIntSet) bool {
	if s.small&rhs.small != 0 {
		return true
	}
	for v := range s.large {
		if rhs.Contains(v) {
			return true
		}
	}
	for v := range rhs.large {
		if s.Contains(v) {
			return true
		}
	}
	return false
}

// DifferenceWith removes any elements in rhs from this set.
func (s *FastIntSet) DifferenceWith(rhs FastIntSet) {
	s.small &^= rhs.small
	for v := range rhs.large {
		s.Remove(v)
	}
}

// Difference returns the elements of s that are not in rhs as a new set.
func (s FastIntSet) Difference(rhs FastIntSet) FastIntSet {
	r := s.Copy()
	r.DifferenceWith(rhs)
	return r
}

// Equals returns true if the two sets are identical.
func (s FastIntSet) Equals(rhs FastIntSet) bool {
	if s.small != rhs.small || len(s.large) != len(rhs.large) {
		return false
	}
	for v := range s.large {
		if !rhs.Contains(v) {
			return false
		}
	}
	return true
}

// SubsetOf returns true if rhs contains all the elements in s.
func (s FastIntSet) SubsetOf(rhs FastIntSet) bool {
	if s.small&^rhs.small != 0 {
		return false
	}
	for v := range s.large {
		if !rhs.Contains(v) {
			return false
		}
	}
	return true
}

// String returns a list representation of elements. Sequential runs of
// positive numbers are shown as ranges. For example, for the set {1, 2, 3,
// 5, 6, 10}, the output is "(1-3,5,6,10)".
func (s FastIntSet) String() string {
	var buf bytes.Buffer
	buf.WriteByte('(')
	appendRange := func(start, end int) {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		if start == end {
			fmt.Fprintf(&buf, "%d", start)
		} else if start+1 == end {
			fmt.Fprintf(&buf, "%d,%d", start, end)
		} else {
			fmt.Fprintf(&buf, "%d-%d", start, end)
		}
	}
	rangeStart, rangeEnd := -1, -1
	for _, v := range s.Ordered() {
		if rangeStart != -1 && v == rangeEnd+1 {
			rangeEnd = v
			continue
		}
		if rangeStart != -1 {
			appendRange(rangeStart, rangeEnd)
		}
		rangeStart, rangeEnd = v, v
	}
	if rangeStart != -1 {
		appendRange(rangeStart, rangeEnd)
	}
	buf.WriteByte(')')
	return buf.String()
}
