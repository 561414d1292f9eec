// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotation

import "sync"

// AnnotatedObject is an interned handle for an external entity id (e.g.
// "MGI:1918911"). Interning happens through a package-level registry so
// that equal ids always yield the same handle regardless of which loader
// or AnnotationSet produced them.
type AnnotatedObject struct {
	id int64
	ID string
}

var intern = struct {
	mu   sync.Mutex
	byID map[string]AnnotatedObject
	all  []AnnotatedObject
}{byID: make(map[string]AnnotatedObject)}

// Intern returns the canonical AnnotatedObject for id, creating it on first
// use.
func Intern(id string) AnnotatedObject {
	intern.mu.Lock()
	defer intern.mu.Unlock()
	if o, ok := intern.byID[id]; ok {
		return o
	}
	o := AnnotatedObject{id: int64(len(intern.all)), ID: id}
	intern.byID[id] = o
	intern.all = append(intern.all, o)
	return o
}

// NumInterned returns the number of distinct objects interned so far. It
// sizes the object-indexed idset.Set universe in internal/compiled.
func NumInterned() int {
	intern.mu.Lock()
	defer intern.mu.Unlock()
	return len(intern.all)
}

// DenseID returns the dense integer id assigned to o when it was first
// interned. internal/compiled uses it to index term2obj's object-indexed
// bitsets.
func (o AnnotatedObject) DenseID() int64 { return o.id }
