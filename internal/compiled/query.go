// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compiled

import (
	"context"

	"gonum.org/v1/gonum/floats"

	"github.com/jaxtools/simmer/internal/annotation"
	"github.com/jaxtools/simmer/internal/idset"
	"github.com/jaxtools/simmer/internal/ontology"
	"github.com/jaxtools/simmer/internal/simmererr"
)

// QueryKind selects how Query.Object or Query.Terms is interpreted.
type QueryKind int

const (
	// ObjectQuery looks up the query terms from an already-annotated object.
	ObjectQuery QueryKind = iota
	// ListQuery takes the query terms directly from Query.Terms.
	ListQuery
)

// Query describes one similarity request. Term-id resolution for a list
// query, and object-name resolution for an object query, happen upstream
// in internal/query before a Query reaches this package: Kind=ObjectQuery
// carries an already-resolved (possibly unseen) AnnotatedObject, and
// Kind=ListQuery carries already-resolved ontology.Terms, so that
// InvalidQueryTerm can be raised at parse time rather than here.
type Query struct {
	Kind   QueryKind
	Object annotation.AnnotatedObject
	Terms  []ontology.Term
}

// normalize resolves q to Q, the namespace-filtered query term set. An
// object query that names an unseen object yields an empty Q (the
// empty-set lookup, not an error), which feeds into the all-zero scoring
// below.
func (c *CompiledAnnotationSet) normalize(q Query, namespace string) []ontology.Term {
	var candidates idset.Set
	switch q.Kind {
	case ObjectQuery:
		s, ok := c.obj2term[q.Object]
		if !ok {
			return nil
		}
		candidates = s
	case ListQuery:
		var terms []ontology.Term
		for _, t := range q.Terms {
			if t.Namespace == namespace {
				terms = append(terms, t)
			}
		}
		return terms
	}
	var out []ontology.Term
	candidates.Range(func(id int64) bool {
		t := c.ontology.TermByDenseID(id)
		if t.Namespace == namespace {
			out = append(out, t)
		}
		return true
	})
	return out
}

// candidateTerms returns Cᵤ, obj's namespace-restricted direct annotation
// set, as a dense-id bitset ready for intersection/union.
func (c *CompiledAnnotationSet) candidateTerms(obj annotation.AnnotatedObject, namespace string) idset.Set {
	all, ok := c.obj2term[obj]
	out := idset.New(c.termUniverse)
	if !ok {
		return out
	}
	all.Range(func(id int64) bool {
		if c.ontology.TermByDenseID(id).Namespace == namespace {
			out.Add(id)
		}
		return true
	})
	return out
}

// validate rechecks the unknown-namespace and negative-length conditions
// for callers reaching this package directly. The query facade performs
// the same checks before requesting a compiled set from the cache, so an
// invalid request never pays for a build; query-kind, method-name and
// annotation-set-name validation, and list-query term-id resolution, are
// the facade's responsibility alone.
func (c *CompiledAnnotationSet) validate(namespace string, length int) error {
	if length < 0 {
		return simmererr.New(simmererr.InvalidLength, "length %d is negative", length)
	}
	if !c.ontology.HasNamespace(namespace) {
		return simmererr.New(simmererr.InvalidNamespace, "unknown namespace %q", namespace)
	}
	return nil
}

// mica returns the most-informative-common-ancestor score for a and b:
// max{ IC(x) | x in forwardClosure(a) ∩ forwardClosure(b) }, treating
// undefined IC as 0 and an empty intersection as 0.
func (c *CompiledAnnotationSet) mica(a, b ontology.Term) float64 {
	inter := idset.Intersect(c.ontology.ForwardClosure(a), c.ontology.ForwardClosure(b))
	max := 0.0
	found := false
	inter.Range(func(id int64) bool {
		v := c.icOf(id)
		if !found || v > max {
			max = v
			found = true
		}
		return true
	})
	return max
}

// Resnik computes the best-match-average similarity for q against every
// candidate object, restricted to namespace, sorted and truncated to
// length. It reports Cancelled if ctx is done between candidates.
func (c *CompiledAnnotationSet) Resnik(ctx context.Context, q Query, namespace string, length int) ([]Result, error) {
	if err := c.validate(namespace, length); err != nil {
		return nil, err
	}
	Q := c.normalize(q, namespace)

	var results []Result
	for _, obj := range c.annSet.GetAnnotatedObjects() {
		select {
		case <-ctx.Done():
			return nil, simmererr.New(simmererr.Cancelled, "resnikBMA cancelled: %v", ctx.Err())
		default:
		}

		if len(Q) == 0 {
			results = append(results, Result{Object: obj, Score: 0})
			continue
		}
		Cu := c.candidateTermsAsTerms(obj, namespace)
		if len(Cu) == 0 {
			results = append(results, Result{Object: obj, Score: 0})
			continue
		}
		rowMax := make([]float64, len(Q))
		for i, qt := range Q {
			best := 0.0
			for _, t := range Cu {
				if v := c.mica(qt, t); v > best {
					best = v
				}
			}
			rowMax[i] = best
		}
		score := floats.Sum(rowMax) / float64(len(rowMax))
		results = append(results, Result{Object: obj, Score: score})
	}
	return rank(results, length), nil
}

// candidateTermsAsTerms is candidateTerms materialised as a Term slice,
// for the measures that need to range over query-side x candidate-side
// term pairs rather than just set algebra.
func (c *CompiledAnnotationSet) candidateTermsAsTerms(obj annotation.AnnotatedObject, namespace string) []ontology.Term {
	set := c.candidateTerms(obj, namespace)
	var out []ontology.Term
	set.Range(func(id int64) bool {
		out = append(out, c.ontology.TermByDenseID(id))
		return true
	})
	return out
}

// unionClosure returns U(terms), the union of forwardClosure(t) for t in
// terms: every term in terms plus all their ancestors. Jaccard and GIC
// compare these closure-expanded sets rather than the raw annotation sets.
func (c *CompiledAnnotationSet) unionClosure(terms []ontology.Term) idset.Set {
	out := idset.New(c.termUniverse)
	for _, t := range terms {
		out.UnionWith(c.ontology.ForwardClosure(t))
	}
	return out
}

// Jaccard computes the extended Jaccard similarity for q against every
// candidate object.
func (c *CompiledAnnotationSet) Jaccard(ctx context.Context, q Query, namespace string, length int) ([]Result, error) {
	if err := c.validate(namespace, length); err != nil {
		return nil, err
	}
	Q := c.normalize(q, namespace)
	Qs := c.unionClosure(Q)

	var results []Result
	for _, obj := range c.annSet.GetAnnotatedObjects() {
		select {
		case <-ctx.Done():
			return nil, simmererr.New(simmererr.Cancelled, "jaccardExt cancelled: %v", ctx.Err())
		default:
		}

		if len(Q) == 0 {
			results = append(results, Result{Object: obj, Score: 0})
			continue
		}
		Cu := c.candidateTermsAsTerms(obj, namespace)
		if len(Cu) == 0 {
			results = append(results, Result{Object: obj, Score: 0})
			continue
		}
		Cs := c.unionClosure(Cu)
		union := idset.UnionLen(Qs, Cs)
		if union == 0 {
			results = append(results, Result{Object: obj, Score: 0})
			continue
		}
		inter := idset.IntersectLen(Qs, Cs)
		results = append(results, Result{Object: obj, Score: float64(inter) / float64(union)})
	}
	return rank(results, length), nil
}

// GIC computes the extended graph-information-content similarity for q
// against every candidate object.
func (c *CompiledAnnotationSet) GIC(ctx context.Context, q Query, namespace string, length int) ([]Result, error) {
	if err := c.validate(namespace, length); err != nil {
		return nil, err
	}
	Q := c.normalize(q, namespace)
	Qs := c.unionClosure(Q)

	var results []Result
	for _, obj := range c.annSet.GetAnnotatedObjects() {
		select {
		case <-ctx.Done():
			return nil, simmererr.New(simmererr.Cancelled, "gicExt cancelled: %v", ctx.Err())
		default:
		}

		if len(Q) == 0 {
			results = append(results, Result{Object: obj, Score: 0})
			continue
		}
		Cu := c.candidateTermsAsTerms(obj, namespace)
		if len(Cu) == 0 {
			results = append(results, Result{Object: obj, Score: 0})
			continue
		}
		Cs := c.unionClosure(Cu)
		inter := idset.Intersect(Qs, Cs)
		union := idset.Union(Qs, Cs)

		var numVals, denomVals []float64
		inter.Range(func(id int64) bool {
			numVals = append(numVals, c.icOf(id))
			return true
		})
		union.Range(func(id int64) bool {
			denomVals = append(denomVals, c.icOf(id))
			return true
		})
		denom := floats.Sum(denomVals)
		if denom == 0 {
			results = append(results, Result{Object: obj, Score: 0})
			continue
		}
		results = append(results, Result{Object: obj, Score: floats.Sum(numVals) / denom})
	}
	return rank(results, length), nil
}
