// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package util

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/crestdb/crest/pkg/util/randutil"
)

func TestFastIntSet(t *testing.T) {
	for _, mVal := range []int{1, 8, 30, smallCutoff, 2 * smallCutoff, 4 * smallCutoff} {
		m := mVal
		t.Run(fmt.Sprintf("%d", m), func(t *testing.T) {
			rng, _ := randutil.NewPseudoRand()
			in := make([]bool, m)
			forEachRes := make([]bool, m)

			var s FastIntSet
			for i := 0; i < 1000; i++ {
				v := rng.Intn(m)
				if rng.Intn(2) == 0 {
					in[v] = true
					s.Add(v)
				} else {
					in[v] = false
					s.Remove(v)
				}
				empty := true
				for j := 0; j < m; j++ {
					empty = empty && !in[j]
					if in[j] != s.Contains(j) {
						t.Fatalf("incorrect result for Contains(%d), expected %t", j, in[j])
					}
				}
				if empty != s.Empty() {
					t.Fatalf("incorrect result for Empty(), expected %t", empty)
				}
				// Test ForEach.
				for j := range forEachRes {
					forEachRes[j] = false
				}
				s.ForEach(func(j int) {
					forEachRes[j] = true
				})
				for j := 0; j < m; j++ {
					if in[j] != forEachRes[j] {
						t.Fatalf("incorrect ForEach result for %d (%t, expected %t)", j, forEachRes[j], in[j])
					}
				}
				// Cross-check Ordered and Next().
				var vals []int
				for i, ok := s.Next(0); ok; i, ok = s.Next(i + 1) {
					vals = append(vals, i)
				}
				if o := s.Ordered(); !reflect.DeepEqual(vals, o) {
					t.Fatalf("set built with Next doesn't match Ordered: %v vs %v", vals, o)
				}
				// Test Copy and CopyFrom.
				s2 := s.Copy()
				if !s.Equals(s2) || !s2.Equals(s) {
					t.Fatalf("expected equality: %v, %v", s, s2)
				}
				var s3 FastIntSet
				s3.CopyFrom(s)
				if !s.Equals(s3) || !s3.Equals(s) {
					t.Fatalf("expected equality: %v, %v", s, s3)
				}
			}
		})
	}
}

func TestFastIntSetTwoSetOps(t *testing.T) {
	rng, _ := randutil.NewPseudoRand()
	// genSet creates a set of numElem values in [minVal, minVal + valRange).
	genSet := func(numElem, minVal, valRange int) (FastIntSet, map[int]bool) {
		var s FastIntSet
		used := make(map[int]bool, numElem)
		for len(used) < numElem {
			v := minVal + rng.Intn(valRange)
			if !used[v] {
				used[v] = true
				s.Add(v)
			}
		}
		return s, used
	}

	for _, c := range []struct {
		numElem, minVal, valRange int
	}{
		{5, 0, 10},
		{10, 0, smallCutoff},
		{20, smallCutoff / 2, 2 * smallCutoff},
		{30, 0, 4 * smallCutoff},
	} {
		s1, m1 := genSet(c.numElem, c.minVal, c.valRange)
		s2, m2 := genSet(c.numElem, c.minVal, c.valRange)

		u := s1.Union(s2)
		for v := range m1 {
			if !u.Contains(v) {
				t.Errorf("union is missing element %d", v)
			}
		}
		for v := range m2 {
			if !u.Contains(v) {
				t.Errorf("union is missing element %d", v)
			}
		}
		if u.Len() > len(m1)+len(m2) {
			t.Errorf("union has too many elements")
		}

		in := s1.Intersection(s2)
		in.ForEach(func(v int) {
			if !m1[v] || !m2[v] {
				t.Errorf("intersection has extra element %d", v)
			}
		})
		for v := range m1 {
			if m2[v] && !in.Contains(v) {
				t.Errorf("intersection is missing element %d", v)
			}
		}
		if s1.Intersects(s2) != !in.Empty() {
			t.Errorf("inconsistent Intersects result")
		}

		d := s1.Difference(s2)
		d.ForEach(func(v int) {
			if !m1[v] || m2[v] {
				t.Errorf("difference has extra element %d", v)
			}
		})
		for v := range m1 {
			if !m2[v] && !d.Contains(v) {
				t.Errorf("difference is missing element %d", v)
			}
		}

		if !in.SubsetOf(s1) || !in.SubsetOf(s2) || !d.SubsetOf(s1) || !s1.SubsetOf(u) || !s2.SubsetOf(u) {
			t.Errorf("inconsistent SubsetOf result")
		}
	}
}

func TestFastIntSetShift(t *testing.T) {
	s := MakeFastIntSet(1, 2, 70)
	s.Shift(10)
	if exp := MakeFastIntSet(11, 12, 80); !s.Equals(exp) {
		t.Errorf("expected %v, got %v", exp, s)
	}
}

func TestFastIntSetString(t *testing.T) {
	testCases := []struct {
		vals []int
		exp  string
	}{
		{vals: []int{}, exp: "()"},
		{vals: []int{7}, exp: "(7)"},
		{vals: []int{1, 2}, exp: "(1,2)"},
		{vals: []int{1, 2, 3, 5, 6, 10}, exp: "(1-3,5,6,10)"},
		{vals: []int{0, 1, 2, 100}, exp: "(0-2,100)"},
	}
	for _, tc := range testCases {
		if s := MakeFastIntSet(tc.vals...).String(); s != tc.exp {
			t.Errorf("expected %s, got %s", tc.exp, s)
		}
	}
}
