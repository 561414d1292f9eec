// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format implements the plaintext/json/html result formatters.
// Each is a pure function of a ranked result list, the echoed query
// parameters, and a labeler.Labeler, matching the formatter contract that
// treats display as an external collaborator to the compiled engine.
package format

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jaxtools/simmer/internal/compiled"
	"github.com/jaxtools/simmer/internal/labeler"
)

// Params are the query parameters echoed back by every formatter.
type Params struct {
	Namespace  string
	Length     int
	Method     string
	QueryInput string
}

// Plaintext renders results as a header line, one "<label>\t\t<score>"
// line per result, and a final line of the result object ids separated by
// single spaces.
func Plaintext(results []compiled.Result, p Params, lbl labeler.Labeler) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:Top%d%sresults for %s\n", p.Namespace, p.Length, p.Method, p.QueryInput)

	kind := labeler.KindForNamespace(p.Namespace)
	ids := make([]string, len(results))
	for i, r := range results {
		label := lbl.Label(kind, r.Object.ID)
		fmt.Fprintf(&b, "%s\t\t%s\n", label, formatScore(r.Score))
		ids[i] = r.Object.ID
	}
	b.WriteString(strings.Join(ids, " "))
	return b.String()
}

// jsonDoc is the json formatter's output document: the echoed params and
// the array of [label, score] pairs.
type jsonDoc struct {
	Params  map[string]interface{} `json:"params"`
	Results [][2]interface{}       `json:"results"`
}

// JSON renders results as {"params": {...}, "results": [[label, score], ...]}.
// Labels have tab characters replaced with single spaces.
func JSON(results []compiled.Result, p Params, lbl labeler.Labeler) (string, error) {
	kind := labeler.KindForNamespace(p.Namespace)
	doc := jsonDoc{
		Params: map[string]interface{}{
			"namespace":  p.Namespace,
			"length":     p.Length,
			"method":     p.Method,
			"queryInput": p.QueryInput,
		},
		Results: make([][2]interface{}, len(results)),
	}
	for i, r := range results {
		label := strings.ReplaceAll(lbl.Label(kind, r.Object.ID), "\t", " ")
		doc.Results[i] = [2]interface{}{label, r.Score}
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("format: marshal json result: %w", err)
	}
	return string(out), nil
}

// HTML renders results as a two-column <table> with header "Result | Score".
func HTML(results []compiled.Result, p Params, lbl labeler.Labeler) string {
	kind := labeler.KindForNamespace(p.Namespace)
	var b strings.Builder
	b.WriteString("<table><tr><th>Result</th><th>Score</th></tr>")
	for _, r := range results {
		label := lbl.Label(kind, r.Object.ID)
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td></tr>", label, formatScore(r.Score))
	}
	b.WriteString("</table>")
	return b.String()
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'g', -1, 64)
}
