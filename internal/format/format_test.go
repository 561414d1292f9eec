// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jaxtools/simmer/internal/annotation"
	"github.com/jaxtools/simmer/internal/compiled"
	"github.com/jaxtools/simmer/internal/labeler"
)

func sampleResults() []compiled.Result {
	return []compiled.Result{
		{Object: annotation.Intern("fmt-o1"), Score: 1.0},
		{Object: annotation.Intern("fmt-o2"), Score: 0.5},
	}
}

func TestPlaintextShape(t *testing.T) {
	out := Plaintext(sampleResults(), Params{Namespace: "GO", Length: 2, Method: "jaccardExt", QueryInput: "fmt-o1"}, labeler.Identity{})
	lines := strings.Split(out, "\n")
	require.Equal(t, "GO:Top2jaccardExtresults for fmt-o1", lines[0])
	require.Equal(t, "fmt-o1\t\t1", lines[1])
	require.Equal(t, "fmt-o1 fmt-o2", lines[len(lines)-1])
}

func TestJSONShape(t *testing.T) {
	out, err := JSON(sampleResults(), Params{Namespace: "GO", Length: 2, Method: "jaccardExt", QueryInput: "fmt-o1"}, labeler.Identity{})
	require.NoError(t, err)
	require.Contains(t, out, `"params"`)
	require.Contains(t, out, `"results"`)
	require.Contains(t, out, "fmt-o1")
}

func TestHTMLShape(t *testing.T) {
	out := HTML(sampleResults(), Params{Namespace: "GO"}, labeler.Identity{})
	require.True(t, strings.HasPrefix(out, "<table><tr><th>Result</th><th>Score</th></tr>"))
	require.Contains(t, out, "fmt-o1")
}
