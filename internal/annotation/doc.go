// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package annotation implements AnnotatedObjects, Annotations linking them
// to ontology terms, and AnnotationSets with evidence-code filtering, as
// described for the Gene Ontology association-file data model this system
// consumes.
package annotation
