// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jaxtools/simmer/internal/annotation"
	"github.com/jaxtools/simmer/internal/ontology"
)

// identity mints and remembers an opaque uuid for each distinct
// AnnotationSet/Ontology pointer the cache has seen. Pointer identity
// alone would work just as well here since neither type is ever mutated
// after construction, but a cache key built from an explicit identity
// token keeps key from needing to know anything about the shape of
// the objects it identifies.
var identity = struct {
	mu       sync.Mutex
	annSets  map[*annotation.AnnotationSet]uuid.UUID
	ontology map[*ontology.Ontology]uuid.UUID
}{
	annSets:  make(map[*annotation.AnnotationSet]uuid.UUID),
	ontology: make(map[*ontology.Ontology]uuid.UUID),
}

func identityOfAnnSet(a *annotation.AnnotationSet) uuid.UUID {
	identity.mu.Lock()
	defer identity.mu.Unlock()
	if id, ok := identity.annSets[a]; ok {
		return id
	}
	id := uuid.New()
	identity.annSets[a] = id
	return id
}

func identityOfOntology(o *ontology.Ontology) uuid.UUID {
	identity.mu.Lock()
	defer identity.mu.Unlock()
	if id, ok := identity.ontology[o]; ok {
		return id
	}
	id := uuid.New()
	identity.ontology[o] = id
	return id
}
