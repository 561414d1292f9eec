// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// key is the resolved CompiledCacheKey: an AnnotationSet identity, a
// canonical evidence-code string, and an Ontology identity.
type key struct {
	annSet   uuid.UUID
	codes    string
	ontology uuid.UUID
}

// canonicalizeCodes splits raw on commas or whitespace, trims, dedupes and
// sorts the result, so that "ISS,ISO" and "ISO, ISS " produce the same
// cache key and the same excluded-code set.
func canonicalizeCodes(raw string) (canon string, excluded map[string]bool) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		seen[f] = true
	}
	codes := make([]string, 0, len(seen))
	for c := range seen {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return strings.Join(codes, ","), seen
}
