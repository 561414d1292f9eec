// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ontology

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"gonum.org/v1/gonum/graph/formats/rdf"

	"github.com/jaxtools/simmer/internal/owl"
)

// Predicates consulted while walking an OBO-in-OWL stream. Other OWL axioms
// (equivalence classes, property restrictions, property chains) carry no
// information the similarity measures use; internal/owl produces no
// statements for them, and any other predicate is ignored here, as in the
// lean filter of the Gene Ontology tooling this loader is adapted from.
const (
	subClassOfPred      = "<rdfs:subClassOf>"
	hasOBONamespacePred = "<oboInOwl:hasOBONamespace>"
	labelPred           = "<rdfs:label>"
	termPrefix          = "<obo:"
)

// LoadOWL decodes an OBO-in-OWL stream (such as the Gene Ontology's go.owl
// export) into the Specs and Edges Build expects. Every endpoint of a
// term-to-term subClassOf edge gets a Spec, so Build always sees both ends
// of every edge; an endpoint with no label or namespace statement of its
// own has an empty Name and Namespace.
func LoadOWL(r io.Reader) ([]Spec, []Edge, error) {
	dec, err := owl.NewDecoder(r)
	if err != nil {
		return nil, nil, err
	}

	names := make(map[string]string)
	namespaces := make(map[string]string)
	seen := make(map[string]bool)
	var edges []Edge

	for {
		s, err := dec.UnmarshalLocal()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, nil, err
		}

		switch s.Predicate.Value {
		case subClassOfPred:
			if !isTerm(s.Subject.Value) || !isTerm(s.Object.Value) {
				// Restriction-based subclass axioms ("part_of some X") target
				// a blank node, not another term, and contribute no is-a edge.
				continue
			}
			child, parent := externalID(s.Subject.Value), externalID(s.Object.Value)
			seen[child] = true
			seen[parent] = true
			edges = append(edges, Edge{Child: child, Parent: parent})

		case labelPred:
			if !isTerm(s.Subject.Value) {
				continue
			}
			if text, _, kind, err := s.Object.Parts(); err == nil && kind == rdf.Literal {
				names[externalID(s.Subject.Value)] = text
			}

		case hasOBONamespacePred:
			if !isTerm(s.Subject.Value) {
				continue
			}
			if text, _, kind, err := s.Object.Parts(); err == nil && kind == rdf.Literal {
				id := externalID(s.Subject.Value)
				namespaces[id] = text
				seen[id] = true
			}
		}
	}

	specs := make([]Spec, 0, len(seen))
	for id := range seen {
		specs = append(specs, Spec{ID: id, Name: names[id], Namespace: namespaces[id]})
	}
	return specs, edges, nil
}

// LoadOWLFile opens path (gzip compressed if it ends in ".gz", as the Gene
// Ontology's distributed go.owl.gz exports are), decodes it with LoadOWL,
// and builds an Ontology from the result.
func LoadOWLFile(path string) (*Ontology, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ontology: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("ontology: gunzip %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	specs, edges, err := LoadOWL(r)
	if err != nil {
		return nil, fmt.Errorf("ontology: decode %s: %w", path, err)
	}
	return Build(specs, edges)
}

func isTerm(v string) bool {
	return strings.HasPrefix(v, termPrefix)
}

// externalID turns the compacted IRI form the owl decoder produces, e.g.
// "<obo:GO_0007612>", into the external id used throughout this system,
// e.g. "GO:0007612".
func externalID(v string) string {
	v = strings.TrimPrefix(v, termPrefix)
	v = strings.TrimSuffix(v, ">")
	return strings.Replace(v, "_", ":", 1)
}
