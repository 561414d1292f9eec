// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jaxtools/simmer/internal/ontology"
)

func buildOntology(t *testing.T) *ontology.Ontology {
	t.Helper()
	ont, err := ontology.Build(
		[]ontology.Spec{{ID: "T1", Namespace: "GO"}},
		nil,
	)
	require.NoError(t, err)
	return ont
}

func TestInternReturnsCanonicalHandle(t *testing.T) {
	a := Intern("ann-dup-test")
	b := Intern("ann-dup-test")
	require.Equal(t, a, b)
	require.Equal(t, a.DenseID(), b.DenseID())
}

func TestBuildRejectsUnknownTerm(t *testing.T) {
	ont := buildOntology(t)
	_, err := Build(ont, []Raw{{ObjectID: "o1", TermID: "NOPE"}})
	require.Error(t, err)
}

func TestAnnotationSetIndexesAndOrder(t *testing.T) {
	ont := buildOntology(t)
	set, err := Build(ont, []Raw{
		{ObjectID: "o1", TermID: "T1", EvidenceCode: "IDA"},
		{ObjectID: "o2", TermID: "T1", EvidenceCode: "ISS"},
		{ObjectID: "o1", TermID: "T1", EvidenceCode: "ISS"},
	})
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())

	objs := set.GetAnnotatedObjects()
	require.Equal(t, []string{"o1", "o2"}, []string{objs[0].ID, objs[1].ID})
	require.Len(t, set.GetAnnotsByObject(Intern("o1")), 2)
	require.Empty(t, set.GetAnnotsByObject(Intern("never-annotated")))
}

func TestEvidenceFilterIsImmutable(t *testing.T) {
	ont := buildOntology(t)
	set, err := Build(ont, []Raw{
		{ObjectID: "o1", TermID: "T1", EvidenceCode: "IDA"},
		{ObjectID: "o2", TermID: "T1", EvidenceCode: "ISS"},
	})
	require.NoError(t, err)

	filtered := set.EvidenceFilter(map[string]bool{"ISS": true})
	require.Equal(t, 1, filtered.Len())
	require.Equal(t, 2, set.Len(), "original set must be unchanged")
}
