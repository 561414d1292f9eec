// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"context"
	"io"
	"strings"
	"time"

	charmlog "charm.land/log/v2"

	"github.com/jaxtools/simmer/internal/annotation"
	"github.com/jaxtools/simmer/internal/cache"
	"github.com/jaxtools/simmer/internal/compiled"
	"github.com/jaxtools/simmer/internal/format"
	"github.com/jaxtools/simmer/internal/labeler"
	"github.com/jaxtools/simmer/internal/ontology"
	"github.com/jaxtools/simmer/internal/simmererr"
)

// Request is the single entry point's parameter set, matching the query
// surface named in the external-interfaces contract.
type Request struct {
	AnnSetName            string
	ExcludedEvidenceCodes string
	QueryKind             string // "object" or "list"
	QueryInput            string // object id, or comma/space separated term ids
	Namespace             string
	Method                string // "resnikBMA", "jaccardExt" or "gicExt"
	Length                int
	Format                string // "raw", "plaintext", "json" or "html"
}

// Facade resolves named annotation sets against a compiled-set cache and
// dispatches queries against them. It holds no mutable state of its own
// beyond the cache, so a *Facade is safe for concurrent use.
type Facade struct {
	annSets map[string]*annotation.AnnotationSet
	cache   *cache.Cache
	labeler labeler.Labeler
	logger  *charmlog.Logger
}

// NewFacade returns a Facade serving the given named annotation sets. lbl
// is the label collaborator used by plaintext/json/html formatting; pass
// labeler.Identity{} if none is configured. A nil logger discards log
// output.
func NewFacade(annSets map[string]*annotation.AnnotationSet, lbl labeler.Labeler, logger *charmlog.Logger) *Facade {
	if logger == nil {
		logger = charmlog.New(io.Discard)
	}
	return &Facade{
		annSets: annSets,
		cache:   cache.NewWithLogger(logger),
		labeler: lbl,
		logger:  logger,
	}
}

// measureFunc is the shape shared by compiled.CompiledAnnotationSet's
// Resnik/Jaccard/GIC methods.
type measureFunc func(*compiled.CompiledAnnotationSet, context.Context, compiled.Query, string, int) ([]compiled.Result, error)

var methods = map[string]measureFunc{
	"resnikBMA":  (*compiled.CompiledAnnotationSet).Resnik,
	"jaccardExt": (*compiled.CompiledAnnotationSet).Jaccard,
	"gicExt":     (*compiled.CompiledAnnotationSet).GIC,
}

// Query runs req and returns either a []compiled.Result (format == "raw")
// or a formatted string (format == "plaintext"/"json"/"html").
func (f *Facade) Query(ctx context.Context, req Request) (interface{}, error) {
	start := time.Now()
	out, err := f.query(ctx, req)
	if err != nil {
		f.logger.Error("query failed", "annset", req.AnnSetName, "method", req.Method, "err", err)
		return nil, err
	}
	f.logger.Debug("query complete",
		"annset", req.AnnSetName, "method", req.Method,
		"namespace", req.Namespace, "elapsed", time.Since(start))
	return out, nil
}

func (f *Facade) query(ctx context.Context, req Request) (interface{}, error) {
	annSet, ok := f.annSets[req.AnnSetName]
	if !ok {
		return nil, simmererr.New(simmererr.InvalidAnnSet, "unknown annotation set %q", req.AnnSetName)
	}

	measure, ok := methods[req.Method]
	if !ok {
		return nil, simmererr.New(simmererr.InvalidMethod, "unknown method %q", req.Method)
	}

	// Validation runs ahead of any computation: a bad length or namespace
	// must not trigger a compiled-set build for a previously-unseen key.
	if req.Length < 0 {
		return nil, simmererr.New(simmererr.InvalidLength, "length %d is negative", req.Length)
	}
	if !annSet.Ontology.HasNamespace(req.Namespace) {
		return nil, simmererr.New(simmererr.InvalidNamespace, "unknown namespace %q", req.Namespace)
	}

	q, err := f.parseQuery(annSet.Ontology, req.QueryKind, req.QueryInput)
	if err != nil {
		return nil, err
	}

	cas, err := f.cache.Get(ctx, annSet, req.ExcludedEvidenceCodes, annSet.Ontology)
	if err != nil {
		return nil, err
	}

	results, err := measure(cas, ctx, q, req.Namespace, req.Length)
	if err != nil {
		return nil, err
	}

	switch req.Format {
	case "", "raw":
		return results, nil
	case "plaintext":
		return format.Plaintext(results, f.params(req), f.labeler), nil
	case "json":
		return format.JSON(results, f.params(req), f.labeler)
	case "html":
		return format.HTML(results, f.params(req), f.labeler), nil
	default:
		return nil, simmererr.New(simmererr.InvalidMethod, "unknown format %q", req.Format)
	}
}

func (f *Facade) params(req Request) format.Params {
	return format.Params{
		Namespace:  req.Namespace,
		Length:     req.Length,
		Method:     req.Method,
		QueryInput: req.QueryInput,
	}
}

// parseQuery resolves req's kind/input into a compiled.Query. An object
// query interns (but need not have previously seen) the object id: an
// object never annotated resolves to the degenerate all-zero query inside
// compiled, not an error. A list query resolves every term id eagerly and
// fails with InvalidQueryTerm on the first one the ontology does not know.
func (f *Facade) parseQuery(ont *ontology.Ontology, kind, input string) (compiled.Query, error) {
	switch kind {
	case "object":
		return compiled.Query{Kind: compiled.ObjectQuery, Object: annotation.Intern(input)}, nil
	case "list":
		fields := strings.FieldsFunc(input, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
		terms := make([]ontology.Term, 0, len(fields))
		for _, field := range fields {
			id := strings.TrimSpace(field)
			if id == "" {
				continue
			}
			t, ok := ont.GetTerm(id)
			if !ok {
				return compiled.Query{}, simmererr.New(simmererr.InvalidQueryTerm, "unknown term id %q", id)
			}
			terms = append(terms, t)
		}
		return compiled.Query{Kind: compiled.ListQuery, Terms: terms}, nil
	default:
		return compiled.Query{}, simmererr.New(simmererr.InvalidQueryKind, "unknown query kind %q", kind)
	}
}
