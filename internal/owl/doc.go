// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package owl implements decoding the RDF/XML encoding a Gene Ontology dataset.
// It is not a complete RDF/XML parser implementation.
package owl
