// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ontology implements an immutable directed acyclic graph of
// ontology terms (Gene Ontology, Mammalian Phenotype, or similar) with
// eagerly materialised forward and reverse closures.
//
// Terms are identified externally by a stable string id (e.g. "GO:0007612")
// but are assigned a dense int64 node id on construction; all closure and
// set-algebra operations in this package and in internal/compiled are keyed
// by that dense id, per the data-flow described in the Gene Ontology tools
// this package is modelled on.
package ontology
