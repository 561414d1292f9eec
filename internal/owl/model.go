// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owl

import (
	"encoding/xml"
	"strings"

	"gonum.org/v1/gonum/graph/formats/rdf"
)

// This file maps the subset of the OBO-in-OWL RDF/XML mapping that
// internal/ontology.LoadOWL consumes: an owl:Class's rdf:about, its
// rdfs:label and oboInOwl:hasOBONamespace literal annotations, and the
// rdfs:subClassOf edges that name another class directly by rdf:resource.
// Every other OWL axiom an ontology export carries is skipped: top-level
// elements (declarations of AnnotationProperty/ObjectProperty, annotated
// Axioms, the Ontology header) wholesale by fillBuffer in owl.go, and the
// unmapped children of a Class (equivalentClass expressions, nested
// property restrictions) by encoding/xml while the class is decoded.
// LoadOWL never looks at them, so there is no statement to produce for
// them. For the full OWL2-to-RDF
// mapping these constructs are normally given, see
// https://www.w3.org/TR/owl2-mapping-to-rdf/.

// literal is a simple annotation property assertion on a Class: a chardata
// value with an explicit rdf:datatype attribute. Gene-Ontology-style OWL
// exports always carry that attribute on string-valued annotations such as
// rdfs:label and oboInOwl:hasOBONamespace; its absence (a bare untyped
// literal) is treated as "nothing asserted here", matching how the OWL API
// itself only ever emits typed literals for these annotations.
type literal struct {
	XMLName  xml.Name
	Text     string `xml:",chardata"`
	Datatype string `xml:"datatype,attr"`
}

func (l literal) claim() (pred string, obj rdf.Term, ok bool) {
	if strings.TrimSpace(l.Datatype) == "" {
		return "", rdf.Term{}, false
	}
	return l.XMLName.Space + l.XMLName.Local, mustTerm(rdf.NewLiteralTerm(l.Text, l.Datatype)), true
}

// subClassOf is a direct is-a edge to another named class. A Restriction-
// based subClassOf ("part_of some X") has no rdf:resource attribute on this
// element — the restriction lives in a nested owl:Restriction child instead
// — and claim reports ok=false for it, since LoadOWL only wants term-to-term
// edges.
type subClassOf struct {
	XMLName  xml.Name
	Resource string `xml:"resource,attr"`
}

func (s subClassOf) claim() (pred string, obj rdf.Term, ok bool) {
	if s.Resource == "" {
		return "", rdf.Term{}, false
	}
	return s.XMLName.Space + s.XMLName.Local, mustTerm(rdf.NewIRITerm(s.Resource)), true
}

// class is an owl:Class element, trimmed to the children LoadOWL reads.
type class struct {
	XMLName xml.Name

	About string `xml:"about,attr"`

	Label           []literal    `xml:"label"`
	HasOBONamespace []literal    `xml:"hasOBONamespace"`
	SubClassOf      []subClassOf `xml:"subClassOf"`
}

func (c class) collect(dst []*rdf.Statement) []*rdf.Statement {
	subj := mustTerm(rdf.NewIRITerm(c.About))
	for _, l := range c.Label {
		if pred, obj, ok := l.claim(); ok {
			dst = append(dst, &rdf.Statement{Subject: subj, Predicate: mustTerm(rdf.NewIRITerm(pred)), Object: obj})
		}
	}
	for _, l := range c.HasOBONamespace {
		if pred, obj, ok := l.claim(); ok {
			dst = append(dst, &rdf.Statement{Subject: subj, Predicate: mustTerm(rdf.NewIRITerm(pred)), Object: obj})
		}
	}
	for _, s := range c.SubClassOf {
		if pred, obj, ok := s.claim(); ok {
			dst = append(dst, &rdf.Statement{Subject: subj, Predicate: mustTerm(rdf.NewIRITerm(pred)), Object: obj})
		}
	}
	return dst
}

func mustTerm(t rdf.Term, err error) rdf.Term {
	if err != nil {
		panic(err)
	}
	return t
}
