// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package annload implements the annotation-loader collaborator named in
// the external interfaces: a tab-delimited reader producing
// annotation.Raw records, using a gzip-optional tab-delimited convention.
package annload

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jaxtools/simmer/internal/annotation"
)

// Columns, in order, expected in the tab-delimited annotation file: object
// id, term id, evidence code, qualifier (may be empty).
const (
	colObject = iota
	colTerm
	colEvidence
	colQualifier
	numColumns
)

// Load reads annotation records from the tab-delimited file at path. The
// file may optionally be gzip compressed (detected by the .gz suffix).
// Unknown term ids are not checked here; resolution against an Ontology
// happens in annotation.Build, per the fatal load-time-error contract for
// this collaborator.
func Load(path string) ([]annotation.Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("annload: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if isGzip(path) {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("annload: gunzip %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	c := csv.NewReader(r)
	c.Comma = '\t'
	c.Comment = '#'
	c.FieldsPerRecord = -1

	var raws []annotation.Raw
	for {
		record, err := c.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("annload: %s: %w", path, err)
		}
		if len(record) < numColumns-1 {
			return nil, fmt.Errorf("annload: %s: record has %d columns, want at least %d", path, len(record), numColumns-1)
		}
		raw := annotation.Raw{
			ObjectID:     record[colObject],
			TermID:       record[colTerm],
			EvidenceCode: record[colEvidence],
		}
		if len(record) > colQualifier {
			raw.Qualifier = record[colQualifier]
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

func isGzip(path string) bool {
	return len(path) > 3 && path[len(path)-3:] == ".gz"
}
