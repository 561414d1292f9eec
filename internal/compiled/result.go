// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiled

import (
	"sort"

	"github.com/jaxtools/simmer/internal/annotation"
)

// Result is a single ranked candidate: an object and its similarity score
// against the query.
type Result struct {
	Object annotation.AnnotatedObject
	Score  float64
}

// rank sorts results by score descending, ties broken by external object id
// ascending for determinism, then truncates to the first length entries.
// length < 0 is the caller's responsibility to reject before calling rank;
// length == 0 yields an empty, non-nil slice.
func rank(results []Result, length int) []Result {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Object.ID < results[j].Object.ID
	})
	if length < len(results) {
		results = results[:length]
	}
	out := make([]Result, len(results))
	copy(out, results)
	return out
}
