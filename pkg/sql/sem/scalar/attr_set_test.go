// Copyright 2024 The Crest Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package scalar

import (
	"testing"

	"github.com/crestdb/crest/pkg/sql/types"
	"github.com/stretchr/testify/require"
)

func TestAttrSetIdentity(t *testing.T) {
	// Two attributes sharing a name but holding distinct identity tokens are
	// distinct set members.
	a1 := NewAttribute("a", types.Int, false)
	a2 := NewAttribute("a", types.Int, false)
	require.NotEqual(t, a1.ID(), a2.ID())

	s := MakeAttrSet(a1, a2)
	require.Equal(t, 2, s.Len())
	require.True(t, s.Contains(a1))
	require.True(t, s.Contains(a2))

	// Difference removes only the exact identity-token match.
	d := s.Difference(MakeAttrSet(a1))
	require.Equal(t, 1, d.Len())
	require.False(t, d.Contains(a1))
	require.True(t, d.Contains(a2))
}

func TestAttrSetOps(t *testing.T) {
	a := NewAttribute("a", types.Int, false)
	b := NewAttribute("b", types.String, true)
	c := NewAttribute("c", types.Bool, false)

	s1 := MakeAttrSet(a, b)
	s2 := MakeAttrSet(b, c)

	u := s1.Union(s2)
	require.Equal(t, 3, u.Len())
	require.True(t, s1.SubsetOf(u))
	require.True(t, s2.SubsetOf(u))
	require.False(t, u.SubsetOf(s1))

	// Adding a duplicate is a no-op.
	dup := s1.Copy()
	dup.Add(a)
	require.True(t, dup.Equals(s1))

	require.True(t, s1.Intersects(s2))
	require.False(t, MakeAttrSet(a).Intersects(MakeAttrSet(c)))

	var empty AttrSet
	require.True(t, empty.Empty())
	require.True(t, empty.SubsetOf(s1))
}

func TestAttrSetOrdered(t *testing.T) {
	a := NewAttribute("a", types.Int, false)
	b := NewAttribute("b", types.Int, false)

	// Ordered returns attributes in increasing id order regardless of
	// insertion order.
	s := MakeAttrSet(b, a)
	ordered := s.Ordered()
	require.Len(t, ordered, 2)
	require.Same(t, a, ordered[0])
	require.Same(t, b, ordered[1])
}
