// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ontology

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/jaxtools/simmer/internal/idset"
)

// Edge is a raw is-a (subClassOf) edge: child is a subtype of parent.
type Edge struct {
	Child, Parent string
}

// Spec describes a single term as supplied by an ontology loader, before
// dense ids are assigned.
type Spec struct {
	ID        string
	Name      string
	Namespace string
}

// Ontology is an immutable directed acyclic graph of Terms. Once returned
// by Build, every exported method is safe for concurrent use: no field is
// mutated after construction.
type Ontology struct {
	terms   []Term            // indexed by dense id
	byID    map[string]int    // external id -> dense id
	roots   map[string][]Term // namespace -> roots, in stable (ID-sorted) order
	forward []idset.Set       // dense id -> forward closure (ancestors+self)
	reverse []idset.Set       // dense id -> reverse closure (descendants+self)
}

// Build constructs an Ontology from a term list and a set of is-a edges.
// It rejects cyclic input with an error wrapping topo.Unorderable.
func Build(specs []Spec, edges []Edge) (*Ontology, error) {
	sorted := make([]Spec, len(specs))
	copy(sorted, specs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[string]int, len(sorted))
	terms := make([]Term, len(sorted))
	for i, s := range sorted {
		byID[s.ID] = i
		terms[i] = Term{id: int64(i), ID: s.ID, Name: s.Name, Namespace: s.Namespace}
	}

	g := simple.NewDirectedGraph()
	for i := range terms {
		g.AddNode(simple.Node(int64(i)))
	}
	for _, e := range edges {
		ci, ok := byID[e.Child]
		if !ok {
			return nil, fmt.Errorf("ontology: edge references unknown child term %q", e.Child)
		}
		pi, ok := byID[e.Parent]
		if !ok {
			return nil, fmt.Errorf("ontology: edge references unknown parent term %q", e.Parent)
		}
		g.SetEdge(simple.Edge{F: simple.Node(int64(ci)), T: simple.Node(int64(pi))})
	}

	order, err := topo.Sort(g)
	if err != nil {
		return nil, fmt.Errorf("ontology: cyclic is-a graph: %w", err)
	}

	forward := make([]idset.Set, len(terms))
	reverse := make([]idset.Set, len(terms))
	for i := range terms {
		forward[i] = idset.New(len(terms))
		reverse[i] = idset.New(len(terms))
	}

	// Forward closures (ancestors+self): process in reverse topological
	// order so that every parent's closure is already finalised by the
	// time a child needs to union it in.
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i].ID()
		forward[v].Add(v)
		ns := terms[v].Namespace
		to := g.From(v)
		for to.Next() {
			p := to.Node().ID()
			if terms[p].Namespace != ns {
				continue
			}
			forward[v].UnionWith(forward[p])
		}
	}

	// Reverse closures (descendants+self): process in forward topological
	// order so that every child's closure is already finalised by the
	// time a parent needs to union it in.
	for i := 0; i < len(order); i++ {
		v := order[i].ID()
		reverse[v].Add(v)
		ns := terms[v].Namespace
		from := g.To(v)
		for from.Next() {
			c := from.Node().ID()
			if terms[c].Namespace != ns {
				continue
			}
			reverse[v].UnionWith(reverse[c])
		}
	}

	roots := make(map[string][]Term)
	for i := range terms {
		if g.From(int64(i)).Len() == 0 {
			roots[terms[i].Namespace] = append(roots[terms[i].Namespace], terms[i])
		}
	}
	for ns := range roots {
		rs := roots[ns]
		sort.Slice(rs, func(i, j int) bool { return rs[i].ID < rs[j].ID })
		roots[ns] = rs
	}

	return &Ontology{
		terms:   terms,
		byID:    byID,
		roots:   roots,
		forward: forward,
		reverse: reverse,
	}, nil
}

// GetTerm returns the Term for id and reports whether it was found.
func (o *Ontology) GetTerm(id string) (Term, bool) {
	i, ok := o.byID[id]
	if !ok {
		return Term{}, false
	}
	return o.terms[i], true
}

// HasNamespace reports whether ns is a known namespace in this ontology.
func (o *Ontology) HasNamespace(ns string) bool {
	_, ok := o.roots[ns]
	return ok
}

// Roots returns the roots of namespace ns in stable (term-id ascending)
// order. The order is deterministic across runs for identical input, which
// matters because internal/compiled fixes the first root as the
// information-content denominator.
func (o *Ontology) Roots(ns string) []Term {
	return o.roots[ns]
}

// ForwardClosure returns the ancestors-including-self of t, restricted to
// t's own namespace.
func (o *Ontology) ForwardClosure(t Term) idset.Set {
	return o.forward[t.id]
}

// ReverseClosure returns the descendants-including-self of t, restricted to
// t's own namespace.
func (o *Ontology) ReverseClosure(t Term) idset.Set {
	return o.reverse[t.id]
}

// TermByDenseID returns the Term for a dense id, as produced by Set.Slice
// on a closure returned by ForwardClosure/ReverseClosure.
func (o *Ontology) TermByDenseID(id int64) Term {
	return o.terms[id]
}

// NumTerms returns the number of terms known to the ontology, i.e. the
// universe size for idset.Set values returned by this Ontology.
func (o *Ontology) NumTerms() int {
	return len(o.terms)
}
