// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotation

import (
	"fmt"

	"github.com/jaxtools/simmer/internal/ontology"
)

// Annotation links an AnnotatedObject to an ontology Term with the evidence
// and qualifier under which the link was asserted. Attrs carries whatever
// additional provenance fields the loader attached (e.g. reference, date,
// assigned-by) that the similarity measures themselves never consult.
type Annotation struct {
	Object       AnnotatedObject
	Term         ontology.Term
	EvidenceCode string
	Qualifier    string
	Attrs        map[string]string
}

// Raw is what an annotation loader supplies for a single record, before
// term-id resolution against an Ontology.
type Raw struct {
	ObjectID     string
	TermID       string
	EvidenceCode string
	Qualifier    string
	Attrs        map[string]string
}

// Build resolves a slice of Raw records against ont and returns an
// AnnotationSet. An unresolvable TermID is a fatal load-time error, per the
// contract for the annotation-loader collaborator.
func Build(ont *ontology.Ontology, raws []Raw) (*AnnotationSet, error) {
	annotations := make([]Annotation, len(raws))
	for i, r := range raws {
		term, ok := ont.GetTerm(r.TermID)
		if !ok {
			return nil, fmt.Errorf("annotation: unknown term %q referenced by object %q", r.TermID, r.ObjectID)
		}
		annotations[i] = Annotation{
			Object:       Intern(r.ObjectID),
			Term:         term,
			EvidenceCode: r.EvidenceCode,
			Qualifier:    r.Qualifier,
			Attrs:        r.Attrs,
		}
	}
	return newSet(ont, annotations), nil
}

// AnnotationSet is a collection of Annotations plus byObject/byTerm
// indexes, all sharing a single governing Ontology.
type AnnotationSet struct {
	Ontology    *ontology.Ontology
	annotations []Annotation

	byObject map[AnnotatedObject][]Annotation
	byTerm   map[ontology.Term][]Annotation

	objectOrder []AnnotatedObject
	termOrder   []ontology.Term
}

func newSet(ont *ontology.Ontology, annotations []Annotation) *AnnotationSet {
	s := &AnnotationSet{
		Ontology:    ont,
		annotations: annotations,
		byObject:    make(map[AnnotatedObject][]Annotation),
		byTerm:      make(map[ontology.Term][]Annotation),
	}
	for _, a := range annotations {
		if _, ok := s.byObject[a.Object]; !ok {
			s.objectOrder = append(s.objectOrder, a.Object)
		}
		s.byObject[a.Object] = append(s.byObject[a.Object], a)

		if _, ok := s.byTerm[a.Term]; !ok {
			s.termOrder = append(s.termOrder, a.Term)
		}
		s.byTerm[a.Term] = append(s.byTerm[a.Term], a)
	}
	return s
}

// GetAnnotsByObject returns the annotations for obj, in load order, or nil
// if obj has none.
func (s *AnnotationSet) GetAnnotsByObject(obj AnnotatedObject) []Annotation {
	return s.byObject[obj]
}

// GetAnnotsByTerm returns the annotations pinned directly at t (no closure
// propagation), in load order, or nil if t has none.
func (s *AnnotationSet) GetAnnotsByTerm(t ontology.Term) []Annotation {
	return s.byTerm[t]
}

// GetAnnotatedObjects enumerates every object with at least one surviving
// annotation, each once, in first-seen order.
func (s *AnnotationSet) GetAnnotatedObjects() []AnnotatedObject {
	return s.objectOrder
}

// GetAnnotatedTerms enumerates every term with at least one direct
// annotation, each once, in first-seen order.
func (s *AnnotationSet) GetAnnotatedTerms() []ontology.Term {
	return s.termOrder
}

// Len returns the total number of surviving annotations.
func (s *AnnotationSet) Len() int {
	return len(s.annotations)
}

// EvidenceFilter returns a new AnnotationSet containing exactly the
// annotations whose EvidenceCode is not in excluded. The receiver is left
// unchanged: compiled-set caching depends on the inputs it keys on never
// mutating underneath it.
func (s *AnnotationSet) EvidenceFilter(excluded map[string]bool) *AnnotationSet {
	kept := make([]Annotation, 0, len(s.annotations))
	for _, a := range s.annotations {
		if excluded[a.EvidenceCode] {
			continue
		}
		kept = append(kept, a)
	}
	return newSet(s.Ontology, kept)
}
