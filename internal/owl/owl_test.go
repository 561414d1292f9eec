// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owl

import (
	"io"
	"os"
	"testing"

	"gonum.org/v1/gonum/graph/formats/rdf"
)

// TestDecodeMini exercises the actual call path internal/ontology.LoadOWL
// uses — NewDecoder followed by repeated UnmarshalLocal calls until EOF —
// against a small hand-written RDF/XML fixture covering every element kind
// a real Gene Ontology OWL export carries: an Ontology header, an
// AnnotationProperty and an ObjectProperty declaration, an annotated
// Axiom, and three Classes, one of which has a Restriction-based
// rdfs:subClassOf alongside a direct one. None of the skipped elements,
// nor the Restriction-based subClassOf, should contribute a statement.
func TestDecodeMini(t *testing.T) {
	f, err := os.Open("testdata/mini.owl")
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()

	dec, err := NewDecoder(f)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}

	var stmts []*rdf.Statement
	for {
		s, err := dec.UnmarshalLocal()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("UnmarshalLocal: %v", err)
		}
		stmts = append(stmts, s)
	}

	const (
		wantLabels     = 3
		wantNamespaces = 3
		wantSubClassOf = 2
		wantTotal      = wantLabels + wantNamespaces + wantSubClassOf
	)
	if len(stmts) != wantTotal {
		t.Fatalf("got %d statements, want %d: %v", len(stmts), wantTotal, stmts)
	}

	var labels, namespaces, subClassOfs int
	edges := make(map[string]string)
	for _, s := range stmts {
		switch s.Predicate.Value {
		case "<rdfs:label>":
			labels++
		case "<oboInOwl:hasOBONamespace>":
			namespaces++
		case "<rdfs:subClassOf>":
			subClassOfs++
			edges[s.Subject.Value] = s.Object.Value
		default:
			t.Errorf("unexpected predicate %q", s.Predicate.Value)
		}
	}
	if labels != wantLabels {
		t.Errorf("got %d label statements, want %d", labels, wantLabels)
	}
	if namespaces != wantNamespaces {
		t.Errorf("got %d hasOBONamespace statements, want %d", namespaces, wantNamespaces)
	}
	if subClassOfs != wantSubClassOf {
		t.Errorf("got %d subClassOf statements, want %d", subClassOfs, wantSubClassOf)
	}

	wantEdges := map[string]string{
		"<obo:GO_0000002>": "<obo:GO_0000001>",
		"<obo:GO_0000003>": "<obo:GO_0000001>",
	}
	for child, parent := range wantEdges {
		got, ok := edges[child]
		if !ok {
			t.Errorf("missing subClassOf edge for %s", child)
			continue
		}
		if got != parent {
			t.Errorf("subClassOf(%s) = %s, want %s", child, got, parent)
		}
	}
}
