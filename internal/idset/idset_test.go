// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddHasLen(t *testing.T) {
	s := New(130) // exercises more than two words
	s.Add(0)
	s.Add(63)
	s.Add(64)
	s.Add(129)

	require.True(t, s.Has(0))
	require.True(t, s.Has(129))
	require.False(t, s.Has(1))
	require.Equal(t, 4, s.Len())
}

func TestUnionIntersect(t *testing.T) {
	a := New(64)
	a.Add(1)
	a.Add(2)
	b := New(64)
	b.Add(2)
	b.Add(3)

	u := Union(a, b)
	require.Equal(t, 3, u.Len())
	require.True(t, u.Has(1))
	require.True(t, u.Has(3))

	i := Intersect(a, b)
	require.Equal(t, 1, i.Len())
	require.True(t, i.Has(2))

	require.Equal(t, 1, IntersectLen(a, b))
	require.Equal(t, 3, UnionLen(a, b))
}

func TestUnionWithInPlace(t *testing.T) {
	a := New(64)
	a.Add(1)
	b := New(64)
	b.Add(5)
	a.UnionWith(b)

	require.True(t, a.Has(1))
	require.True(t, a.Has(5))
}

func TestSliceIsSorted(t *testing.T) {
	s := New(200)
	for _, id := range []int64{150, 3, 70, 0} {
		s.Add(id)
	}
	require.Equal(t, []int64{0, 3, 70, 150}, s.Slice())
}

func TestRangeStopsEarly(t *testing.T) {
	s := New(64)
	s.Add(1)
	s.Add(2)
	s.Add(3)

	var seen []int64
	s.Range(func(id int64) bool {
		seen = append(seen, id)
		return len(seen) < 2
	})
	require.Len(t, seen, 2)
}
