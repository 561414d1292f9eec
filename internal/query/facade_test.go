// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jaxtools/simmer/internal/annotation"
	"github.com/jaxtools/simmer/internal/compiled"
	"github.com/jaxtools/simmer/internal/labeler"
	"github.com/jaxtools/simmer/internal/ontology"
	"github.com/jaxtools/simmer/internal/simmererr"
)

func buildFacade(t *testing.T) *Facade {
	t.Helper()
	ont, err := ontology.Build(
		[]ontology.Spec{
			{ID: "A", Namespace: "GO"},
			{ID: "B", Namespace: "GO"},
		},
		[]ontology.Edge{{Child: "B", Parent: "A"}},
	)
	require.NoError(t, err)

	annSet, err := annotation.Build(ont, []annotation.Raw{
		{ObjectID: "fac-o1", TermID: "B", EvidenceCode: "IDA"},
	})
	require.NoError(t, err)

	return NewFacade(map[string]*annotation.AnnotationSet{"fixture": annSet}, labeler.Identity{}, nil)
}

func TestQueryUnknownAnnSet(t *testing.T) {
	f := buildFacade(t)
	_, err := f.Query(context.Background(), Request{AnnSetName: "nope", Method: "resnikBMA", QueryKind: "object", Namespace: "GO"})
	require.True(t, simmererr.Is(err, simmererr.InvalidAnnSet))
}

func TestQueryUnknownMethod(t *testing.T) {
	f := buildFacade(t)
	_, err := f.Query(context.Background(), Request{AnnSetName: "fixture", Method: "nope", QueryKind: "object", Namespace: "GO"})
	require.True(t, simmererr.Is(err, simmererr.InvalidMethod))
}

func TestQueryNegativeLength(t *testing.T) {
	f := buildFacade(t)
	_, err := f.Query(context.Background(), Request{
		AnnSetName: "fixture", Method: "resnikBMA", QueryKind: "object",
		QueryInput: "fac-o1", Namespace: "GO", Length: -1,
	})
	require.True(t, simmererr.Is(err, simmererr.InvalidLength))
}

func TestQueryUnknownNamespace(t *testing.T) {
	f := buildFacade(t)
	_, err := f.Query(context.Background(), Request{
		AnnSetName: "fixture", Method: "resnikBMA", QueryKind: "object",
		QueryInput: "fac-o1", Namespace: "NOPE", Length: 10,
	})
	require.True(t, simmererr.Is(err, simmererr.InvalidNamespace))
}

func TestQueryUnknownListTerm(t *testing.T) {
	f := buildFacade(t)
	_, err := f.Query(context.Background(), Request{
		AnnSetName: "fixture", Method: "resnikBMA", QueryKind: "list", QueryInput: "NOPE", Namespace: "GO",
	})
	require.True(t, simmererr.Is(err, simmererr.InvalidQueryTerm))
}

func TestQueryRawReturnsResults(t *testing.T) {
	f := buildFacade(t)
	out, err := f.Query(context.Background(), Request{
		AnnSetName: "fixture", Method: "jaccardExt", QueryKind: "object",
		QueryInput: "fac-o1", Namespace: "GO", Length: 10, Format: "raw",
	})
	require.NoError(t, err)
	results, ok := out.([]compiled.Result)
	require.True(t, ok)
	require.Len(t, results, 1)
	require.InDelta(t, 1.0, results[0].Score, 1e-9)
}

func TestQueryPlaintextFormat(t *testing.T) {
	f := buildFacade(t)
	out, err := f.Query(context.Background(), Request{
		AnnSetName: "fixture", Method: "jaccardExt", QueryKind: "object",
		QueryInput: "fac-o1", Namespace: "GO", Length: 10, Format: "plaintext",
	})
	require.NoError(t, err)
	require.IsType(t, "", out)
	require.Contains(t, out.(string), "fac-o1")
}
