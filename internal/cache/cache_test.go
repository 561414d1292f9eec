// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jaxtools/simmer/internal/annotation"
	"github.com/jaxtools/simmer/internal/ontology"
	"github.com/jaxtools/simmer/internal/simmererr"
)

func buildFixture(t *testing.T) (*ontology.Ontology, *annotation.AnnotationSet) {
	t.Helper()
	ont, err := ontology.Build([]ontology.Spec{{ID: "T1", Namespace: "GO"}}, nil)
	require.NoError(t, err)
	annSet, err := annotation.Build(ont, []annotation.Raw{
		{ObjectID: "cache-o1", TermID: "T1", EvidenceCode: "ISS"},
	})
	require.NoError(t, err)
	return ont, annSet
}

func TestGetIsSingleFlightAndCodeOrderIndependent(t *testing.T) {
	ont, annSet := buildFixture(t)
	c := New()

	var wg sync.WaitGroup
	results := make([]interface{}, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		cas, err := c.Get(context.Background(), annSet, "ISS,ISO", ont)
		require.NoError(t, err)
		results[0] = cas
	}()
	go func() {
		defer wg.Done()
		cas, err := c.Get(context.Background(), annSet, "ISO, ISS", ont)
		require.NoError(t, err)
		results[1] = cas
	}()
	wg.Wait()

	require.Same(t, results[0], results[1])
}

func TestGetBuildsDistinctInstancePerKey(t *testing.T) {
	ont, annSet := buildFixture(t)
	c := New()

	a, err := c.Get(context.Background(), annSet, "ISS", ont)
	require.NoError(t, err)
	b, err := c.Get(context.Background(), annSet, "ISO", ont)
	require.NoError(t, err)

	require.NotSame(t, a, b)
}

func TestGetCachesSecondCall(t *testing.T) {
	ont, annSet := buildFixture(t)
	c := New()

	a, err := c.Get(context.Background(), annSet, "", ont)
	require.NoError(t, err)
	b, err := c.Get(context.Background(), annSet, "", ont)
	require.NoError(t, err)
	require.Same(t, a, b)
}

func TestGetCancelledBeforeBuild(t *testing.T) {
	ont, annSet := buildFixture(t)
	c := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Get(ctx, annSet, "", ont)
	require.True(t, simmererr.Is(err, simmererr.Cancelled))

	// The abandoned call must not have populated or poisoned the entry:
	// a fresh context builds and caches as usual.
	cas, err := c.Get(context.Background(), annSet, "", ont)
	require.NoError(t, err)
	require.NotNil(t, cas)
}

func TestGetCancelledStillServesCachedEntry(t *testing.T) {
	ont, annSet := buildFixture(t)
	c := New()

	cas, err := c.Get(context.Background(), annSet, "", ont)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A cached entry involves no build to abandon, so even a cancelled
	// context is served.
	again, err := c.Get(ctx, annSet, "", ont)
	require.NoError(t, err)
	require.Same(t, cas, again)
}
