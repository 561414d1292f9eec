// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package query implements the query facade: it resolves an annotation-set
// name and an evidence-code string to a cached compiled set, parses the
// query input into term/object handles, dispatches to the requested
// similarity measure, and hands the ranked result to a formatter.
package query
