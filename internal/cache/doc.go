// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache implements the compiled-annotation-set cache: at-most-one
// concurrent build per (AnnotationSet, excluded-evidence-code-set,
// Ontology) key, built on golang.org/x/sync/singleflight.
package cache
