// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiled

import (
	"math"

	"github.com/jaxtools/simmer/internal/annotation"
	"github.com/jaxtools/simmer/internal/idset"
	"github.com/jaxtools/simmer/internal/ontology"
)

// ic pairs an information-content value with whether it is defined, since
// an undefined IC (zero-coverage root) is not the same value as IC = 0.
type ic struct {
	value   float64
	defined bool
}

// CompiledAnnotationSet is the precomputed engine behind the three
// similarity measures. It is built once by Build and never mutated again:
// every field below is written during Build and read-only from then on,
// so a *CompiledAnnotationSet may be shared across any number of
// concurrently running queries without synchronisation.
type CompiledAnnotationSet struct {
	ontology *ontology.Ontology
	annSet   *annotation.AnnotationSet

	objUniverse  int // annotation.NumInterned() at build time
	termUniverse int // ontology.NumTerms()

	obj2term map[annotation.AnnotatedObject]idset.Set // term dense ids directly annotated to the object
	term2obj map[int64]idset.Set                      // term dense id -> object dense ids (self+descendants)
	term2IC  map[int64]ic                             // term dense id -> information content
}

// Build evidence-filters raw (dropping annotations whose code is in
// excluded) and precomputes obj2term, term2obj and term2IC against ont.
// A non-nil error means construction failed and no *CompiledAnnotationSet
// is returned; callers (internal/cache) must not retain anything on error.
func Build(raw *annotation.AnnotationSet, excluded map[string]bool, ont *ontology.Ontology) (*CompiledAnnotationSet, error) {
	filtered := raw.EvidenceFilter(excluded)

	c := &CompiledAnnotationSet{
		ontology:     ont,
		annSet:       filtered,
		objUniverse:  annotation.NumInterned(),
		termUniverse: ont.NumTerms(),
		obj2term:     make(map[annotation.AnnotatedObject]idset.Set),
		term2obj:     make(map[int64]idset.Set),
		term2IC:      make(map[int64]ic),
	}
	c.computeObj2Term()
	c.computeTerm2Obj()
	c.computeTerm2IC()
	return c, nil
}

// computeObj2Term builds, for every object with surviving annotations, the
// set of terms directly pinned to it. There is no closure propagation on
// this side.
func (c *CompiledAnnotationSet) computeObj2Term() {
	for _, obj := range c.annSet.GetAnnotatedObjects() {
		terms := idset.New(c.termUniverse)
		for _, a := range c.annSet.GetAnnotsByObject(obj) {
			terms.Add(a.Term.DenseID())
		}
		c.obj2term[obj] = terms
	}
}

// computeTerm2Obj implements the upward-propagation invariant: for each
// annotated term t, every object with a direct annotation at t is added to
// term2obj[a] for every a in forwardClosure(t) (t's ancestors, including
// itself). The equivalent reverseClosure-from-descendants phrasing in the
// design notes describes the same result; this direction is the one that
// avoids recomputing per-descendant unions for every ancestor.
func (c *CompiledAnnotationSet) computeTerm2Obj() {
	for _, t := range c.annSet.GetAnnotatedTerms() {
		direct := idset.New(c.objUniverse)
		for _, a := range c.annSet.GetAnnotsByTerm(t) {
			direct.Add(a.Object.DenseID())
		}
		c.ontology.ForwardClosure(t).Range(func(ancestorID int64) bool {
			set, ok := c.term2obj[ancestorID]
			if !ok {
				set = idset.New(c.objUniverse)
				c.term2obj[ancestorID] = set
			}
			set.UnionWith(direct)
			return true
		})
	}
}

// computeTerm2IC computes ln(|term2obj[firstRoot]| / |term2obj[term]|) for
// every term with non-empty coverage, per term.namespace's first root in
// Ontology.Roots order. A zero-coverage root leaves IC undefined for every
// term in that namespace.
func (c *CompiledAnnotationSet) computeTerm2IC() {
	rootObjLen := make(map[string]int) // namespace -> |term2obj[firstRoot]|
	rootDenseID := make(map[string]int64)
	for termID := range c.term2obj {
		ns := c.ontology.TermByDenseID(termID).Namespace
		if _, ok := rootDenseID[ns]; ok {
			continue
		}
		roots := c.ontology.Roots(ns)
		if len(roots) == 0 {
			continue
		}
		root := roots[0]
		rootDenseID[ns] = root.DenseID()
		if set, ok := c.term2obj[root.DenseID()]; ok {
			rootObjLen[ns] = set.Len()
		}
	}

	for termID, objs := range c.term2obj {
		n := objs.Len()
		if n == 0 {
			continue
		}
		ns := c.ontology.TermByDenseID(termID).Namespace
		rLen, ok := rootObjLen[ns]
		if !ok || rLen == 0 {
			c.term2IC[termID] = ic{defined: false}
			continue
		}
		c.term2IC[termID] = ic{value: math.Log(float64(rLen) / float64(n)), defined: true}
	}
}

// icOf returns the information content of t, treating an undefined or
// absent value as 0, per the "treating undefined IC as 0" rule used by
// both MICA and GIC.
func (c *CompiledAnnotationSet) icOf(termID int64) float64 {
	v, ok := c.term2IC[termID]
	if !ok || !v.defined {
		return 0
	}
	return v.value
}

// Ontology returns the governing ontology this set was compiled against.
func (c *CompiledAnnotationSet) Ontology() *ontology.Ontology { return c.ontology }

// AnnotationSet returns the evidence-filtered annotation set this compiled
// set was built from.
func (c *CompiledAnnotationSet) AnnotationSet() *annotation.AnnotationSet { return c.annSet }
