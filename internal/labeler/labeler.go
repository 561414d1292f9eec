// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package labeler implements the label collaborator formatters call to
// turn an AnnotatedObject id into display text, and the namespace-based
// gene/genotype kind dispatch used to pick one.
package labeler

// Kind is the label lookup category, selected from a query namespace.
type Kind string

const (
	// Gene is the default label kind for any namespace other than
	// "MPheno.ontology".
	Gene Kind = "gene"
	// Genotype is used for the "MPheno.ontology" namespace.
	Genotype Kind = "genotype"
)

// mphenoNamespace is the one namespace that dispatches to Genotype;
// every other namespace labels as Gene.
const mphenoNamespace = "MPheno.ontology"

// KindForNamespace returns the label kind a query against namespace should
// use.
func KindForNamespace(namespace string) Kind {
	if namespace == mphenoNamespace {
		return Genotype
	}
	return Gene
}

// Labeler resolves an object id to display text for a given Kind. The stub
// implementation below is the default; real deployments supply one backed
// by a gene/genotype nomenclature lookup, an external collaborator per
// the configuration surface.
type Labeler interface {
	Label(kind Kind, id string) string
}

// Identity is a Labeler that returns id unchanged, regardless of kind. It
// is useful for tests and as a default when no nomenclature source is
// configured.
type Identity struct{}

// Label implements Labeler.
func (Identity) Label(_ Kind, id string) string { return id }
