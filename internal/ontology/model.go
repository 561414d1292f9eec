// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ontology

// Term is an immutable ontology term. Identity is by ID; two Terms with the
// same ID obtained from the same Ontology are the same value.
type Term struct {
	// id is the dense node id assigned at Ontology construction. It is
	// used for all set operations; the external ID field is for I/O only.
	id int64

	ID        string
	Name      string
	Namespace string
}

// DenseID returns the dense integer id assigned to t at Ontology
// construction time. internal/compiled uses it to index obj2term's
// term-indexed bitsets directly instead of through a second map lookup;
// no other package should need it.
func (t Term) DenseID() int64 { return t.id }
