// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	charmlog "charm.land/log/v2"
	"golang.org/x/sync/singleflight"

	"github.com/jaxtools/simmer/internal/annotation"
	"github.com/jaxtools/simmer/internal/compiled"
	"github.com/jaxtools/simmer/internal/ontology"
	"github.com/jaxtools/simmer/internal/simmererr"
)

// Cache holds at most one CompiledAnnotationSet per CompiledCacheKey and
// guarantees at-most-one concurrent build per key: concurrent callers for
// the same key block on a single in-flight build and all receive the same
// instance. A build that fails is not retained; the next caller retries.
type Cache struct {
	group  singleflight.Group
	logger *charmlog.Logger

	mu      sync.RWMutex
	entries map[key]*compiled.CompiledAnnotationSet
}

// New returns an empty Cache that logs nowhere.
func New() *Cache {
	return NewWithLogger(nil)
}

// NewWithLogger returns an empty Cache logging build milestones to logger.
// A nil logger discards them.
func NewWithLogger(logger *charmlog.Logger) *Cache {
	if logger == nil {
		logger = charmlog.New(io.Discard)
	}
	return &Cache{
		logger:  logger,
		entries: make(map[key]*compiled.CompiledAnnotationSet),
	}
}

// Get returns the compiled annotation set for (annSet, excludedEvidenceCodes,
// ont), building it if this is the first request for that key.
// excludedEvidenceCodes is a comma- or whitespace-separated list; order and
// duplicate whitespace are insignificant.
//
// A cancelled ctx makes Get return a Cancelled error without starting a
// build, or without waiting further on one already in flight. The in-flight
// build itself is not interrupted: other callers sharing it still receive
// its result, and a completed build is cached as usual, so cancellation
// never leaves partial state behind.
func (c *Cache) Get(ctx context.Context, annSet *annotation.AnnotationSet, excludedEvidenceCodes string, ont *ontology.Ontology) (*compiled.CompiledAnnotationSet, error) {
	codes, excluded := canonicalizeCodes(excludedEvidenceCodes)
	k := key{
		annSet:   identityOfAnnSet(annSet),
		codes:    codes,
		ontology: identityOfOntology(ont),
	}

	c.mu.RLock()
	if cas, ok := c.entries[k]; ok {
		c.mu.RUnlock()
		return cas, nil
	}
	c.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return nil, simmererr.New(simmererr.Cancelled, "compiled-set build not started: %v", err)
	}

	flightKey := fmt.Sprintf("%s|%s|%s", k.annSet, k.codes, k.ontology)
	ch := c.group.DoChan(flightKey, func() (interface{}, error) {
		// Re-check under the singleflight call: another caller may have
		// populated the entry between our RUnlock above and DoChan
		// acquiring the flight, since the group only dedupes concurrent
		// callers, not a completed-then-retried one.
		c.mu.RLock()
		if cas, ok := c.entries[k]; ok {
			c.mu.RUnlock()
			return cas, nil
		}
		c.mu.RUnlock()

		c.logger.Info("building compiled annotation set", "excluded", k.codes)
		start := time.Now()
		cas, err := compiled.Build(annSet, excluded, ont)
		if err != nil {
			return nil, simmererr.Wrap(simmererr.BuildFailure, err, "building compiled annotation set")
		}
		c.logger.Info("compiled annotation set ready", "excluded", k.codes, "elapsed", time.Since(start))
		c.mu.Lock()
		c.entries[k] = cas
		c.mu.Unlock()
		return cas, nil
	})

	select {
	case <-ctx.Done():
		return nil, simmererr.New(simmererr.Cancelled, "compiled-set build abandoned: %v", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*compiled.CompiledAnnotationSet), nil
	}
}
