// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ontology

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOWLFile(t *testing.T) {
	ont, err := LoadOWLFile("../owl/testdata/mini.owl")
	require.NoError(t, err)

	root, ok := ont.GetTerm("GO:0000001")
	require.True(t, ok)
	require.Equal(t, "root process", root.Name)
	require.Equal(t, "biological_process", root.Namespace)

	roots := ont.Roots("biological_process")
	require.Len(t, roots, 1)
	require.Equal(t, "GO:0000001", roots[0].ID)

	// GO:0000003 carries both a direct subClassOf edge and a
	// Restriction-based one; only the direct edge contributes.
	child, ok := ont.GetTerm("GO:0000003")
	require.True(t, ok)
	require.True(t, ont.ForwardClosure(child).Has(root.DenseID()))

	sibling, ok := ont.GetTerm("GO:0000002")
	require.True(t, ok)
	require.False(t, ont.ForwardClosure(child).Has(sibling.DenseID()))
}
