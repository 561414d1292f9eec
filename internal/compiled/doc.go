// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compiled implements the compiled annotation engine: the
// precomputed obj2term/term2obj/term2IC structures derived from an
// evidence-filtered AnnotationSet and its Ontology, and the three
// published semantic-similarity measures (Resnik best-match-average,
// extended Jaccard, extended graph information content) that query them.
//
// A *CompiledAnnotationSet is built once by Build and is read-only
// thereafter: every exported method is safe to call concurrently from any
// number of goroutines. There is no building or poisoned state represented
// in the type itself: Build either returns a fully computed, ready value
// or a non-nil error and no value, so a half-built set can never be
// observed or cached.
package compiled
