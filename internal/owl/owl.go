// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package owl

import (
	"encoding/xml"
	"io"
	"sort"
	"strings"

	"gonum.org/v1/gonum/graph/formats/rdf"
)

// Decoder is a Gene Ontology OBO in OWL decoder, trimmed to the subset of
// the mapping that internal/ontology.LoadOWL needs: owl:Class elements and
// the rdfs:label, oboInOwl:hasOBONamespace and rdfs:subClassOf children
// they carry. Every other top-level element the RDF/XML stream contains
// (AnnotationProperty and ObjectProperty declarations, annotated Axioms,
// the Ontology header) is consumed and discarded by fillBuffer rather than
// decoded, since LoadOWL has no use for the statements they would produce.
//
// rdf.Statements returned by calls to the Unmarshal and UnmarshalLocal
// methods have their Terms' UID fields set so that unique terms will have
// unique IDs and so can be used directly in a graph.Multi, or in a
// graph.Graph if all predicate terms are identical. IDs created by the
// decoder all exist within a single namespace and so Terms can be uniquely
// identified by their UID. Term UIDs are based from 1 to allow RDF-aware
// client graphs to assign ID if no ID has been assigned.
type Decoder struct {
	xml        *xml.Decoder
	namespaces []xml.Attr

	strings store
	ids     map[string]int64

	curr int
	buf  []*rdf.Statement
	seen map[[3]int64]bool
}

// NewDecoder returns a new Decoder that takes input from r.
func NewDecoder(r io.Reader) (*Decoder, error) {
	dec := &Decoder{
		xml:     xml.NewDecoder(r),
		strings: make(store),
		ids:     make(map[string]int64),
		seen:    make(map[[3]int64]bool),
	}
	for dec.namespaces == nil {
		err := dec.fillBuffer()
		if err != nil {
			return nil, err
		}
	}
	return dec, nil
}

// Unmarshal returns the next unique statement from the input stream.
func (dec *Decoder) Unmarshal() (*rdf.Statement, error) {
	for {
		for len(dec.buf[dec.curr:]) == 0 {
			err := dec.fillBuffer()
			if err != nil {
				return nil, err
			}
		}
		s := dec.buf[dec.curr]
		dec.buf[dec.curr] = nil
		dec.curr++
		if len(dec.buf[dec.curr:]) == 0 {
			dec.curr = 0
			dec.buf = dec.buf[:0]
		}
		s.Subject.Value = dec.strings.intern(s.Subject.Value)
		s.Predicate.Value = dec.strings.intern(s.Predicate.Value)
		s.Object.Value = dec.strings.intern(s.Object.Value)
		s.Subject.UID = dec.idFor(s.Subject.Value)
		s.Object.UID = dec.idFor(s.Object.Value)
		s.Predicate.UID = dec.idFor(s.Predicate.Value)
		triple := [3]int64{s.Subject.UID, s.Predicate.UID, s.Object.UID}
		if !dec.seen[triple] {
			dec.seen[triple] = true
			return s, nil
		}
	}
}

// UnmarshalLocal returns the next unique statement from the input stream, but
// replaces full IRI namespace text with the qualified name prefix obtained
// from the decoder's internal namespace table.
func (dec *Decoder) UnmarshalLocal() (*rdf.Statement, error) {
	s, err := dec.Unmarshal()
	if err != nil {
		return nil, err
	}
	subj, err := dec.compactTerm(s.Subject)
	if err != nil {
		return s, err
	}
	s.Subject = subj
	pred, err := dec.compactTerm(s.Predicate)
	if err != nil {
		return s, err
	}
	s.Predicate = pred
	obj, err := dec.compactTerm(s.Object)
	if err != nil {
		return s, err
	}
	s.Object = obj
	return s, nil
}

func (dec *Decoder) compactTerm(term rdf.Term) (rdf.Term, error) {
	text, qual, kind, err := term.Parts()
	if err != nil {
		return term, err
	}
	uid := term.UID
	switch kind {
	case rdf.IRI:
		new, changed := dec.compactIRI(text)
		if changed {
			term, err := rdf.NewIRITerm(new)
			if err != nil {
				return term, err
			}
			term.UID = uid
			return term, nil
		}
	case rdf.Literal:
		if qual == "" {
			return term, nil
		}
		new, changed := dec.compactIRI(qual)
		if changed {
			term, err := rdf.NewLiteralTerm(text, new)
			if err != nil {
				return term, err
			}
			term.UID = uid
			return term, nil
		}
	}
	return term, nil
}

func (dec *Decoder) compactIRI(iri string) (new string, changed bool) {
	// dec.namespaces is ordered longest to shortest
	// to ensure prefixes are not eagerly chosen.
	for _, ns := range dec.namespaces {
		if strings.HasPrefix(iri, ns.Value) {
			suffix := strings.TrimPrefix(iri, ns.Value)
			if len(suffix) == 0 {
				return iri, false
			}
			return ns.Name.Local + ":" + strings.TrimPrefix(iri, ns.Value), true
		}
	}
	return iri, false
}

func (dec *Decoder) idFor(s string) int64 {
	id, ok := dec.ids[s]
	if ok {
		return id
	}
	id = int64(len(dec.ids)) + 1
	dec.ids[s] = id
	return id
}

func (dec *Decoder) fillBuffer() (err error) {
	defer func() {
		r := recover()
		switch r := r.(type) {
		case nil:
			return
		case error:
			err = r
		default:
			panic(r)
		}
	}()
	tok, err := dec.xml.Token()
	if err != nil {
		if err == io.EOF {
			dec.strings = nil
		}
		return err
	}
	switch tok := tok.(type) {
	case xml.StartElement:
		switch tok.Name.Local {
		case "Class":
			var c class
			err = dec.xml.DecodeElement(&c, &tok)
			if err != nil {
				return err
			}
			dec.buf = c.collect(dec.buf)

		case "RDF":
			for _, attr := range tok.Attr {
				if attr.Name.Space == "http://www.w3.org/XML/1998/namespace" {
					attr.Name.Space = "xml"
				}
				dec.namespaces = append(dec.namespaces, attr)
			}
			sort.Sort(byLength(dec.namespaces))

		default:
			// AnnotationProperty, ObjectProperty, Axiom, Ontology and any
			// other element LoadOWL has no use for: skip it and its
			// children rather than modelling them.
			err = dec.xml.Skip()
			if err != nil {
				return err
			}
		}

	case xml.EndElement:
	case xml.CharData:
	case xml.Comment:
	case xml.Directive:
	case xml.ProcInst:
	}
	return nil
}

// store is a string internment implementation.
type store map[string]string

// intern returns an interned version of the parameter.
func (is store) intern(s string) string {
	if s == "" {
		return ""
	}
	t, ok := is[s]
	if ok {
		return t
	}
	is[s] = s
	return s
}

type byLength []xml.Attr

func (a byLength) Len() int           { return len(a) }
func (a byLength) Less(i, j int) bool { return len(a[i].Value) > len(a[j].Value) }
func (a byLength) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
