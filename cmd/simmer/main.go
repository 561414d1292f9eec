// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// simmer queries semantic-similarity rankings between annotated entities
// over a Gene-Ontology-like DAG. It loads the ontologies and annotation
// sets named in a configuration file, then runs a single query against
// one named annotation set using one of three similarity measures
// (resnikBMA, jaccardExt, gicExt), printing the formatted result to
// stdout.
package main

import (
	"context"
	"fmt"
	"os"

	charmlog "charm.land/log/v2"
	"github.com/spf13/cobra"

	"github.com/jaxtools/simmer/internal/annload"
	"github.com/jaxtools/simmer/internal/annotation"
	"github.com/jaxtools/simmer/internal/config"
	"github.com/jaxtools/simmer/internal/labeler"
	"github.com/jaxtools/simmer/internal/ontology"
	"github.com/jaxtools/simmer/internal/query"
)

func main() {
	logger := charmlog.New(os.Stderr)

	var cfgPath string
	root := &cobra.Command{
		Use:           "simmer",
		Short:         "compiled-annotation-set similarity queries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to the simmer configuration file (required)")

	queryCmd := newQueryCmd(logger, &cfgPath)
	root.AddCommand(queryCmd)

	if err := root.Execute(); err != nil {
		logger.Error("simmer failed", "err", err)
		os.Exit(1)
	}
}

func newQueryCmd(logger *charmlog.Logger, cfgPath *string) *cobra.Command {
	var req query.Request

	cmd := &cobra.Command{
		Use:   "query",
		Short: "run a single similarity query against a configured annotation set",
		RunE: func(cmd *cobra.Command, args []string) error {
			if *cfgPath == "" {
				return fmt.Errorf("--config is required")
			}
			return runQuery(logger, *cfgPath, req)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.AnnSetName, "annset", "", "configured annotation-set name (required)")
	flags.StringVar(&req.ExcludedEvidenceCodes, "exclude", "", "comma/space separated evidence codes to exclude")
	flags.StringVar(&req.QueryKind, "kind", "object", `query kind: "object" or "list"`)
	flags.StringVar(&req.QueryInput, "input", "", "object id, or comma/space separated term ids (required)")
	flags.StringVar(&req.Namespace, "namespace", "", "ontology namespace to restrict the query to (required)")
	flags.StringVar(&req.Method, "method", "resnikBMA", "resnikBMA, jaccardExt or gicExt")
	flags.IntVar(&req.Length, "length", 10, "number of ranked results to return")
	flags.StringVar(&req.Format, "format", "plaintext", "raw, plaintext, json or html")
	cmd.MarkFlagRequired("annset")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("namespace")

	return cmd
}

func runQuery(logger *charmlog.Logger, cfgPath string, req query.Request) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	ontoEntry, ok := cfg.AnnotationSetByName(req.AnnSetName)
	if !ok {
		return fmt.Errorf("simmer: annotation set %q not found in %s", req.AnnSetName, cfgPath)
	}
	ontoCfg, ok := cfg.OntologyByName(ontoEntry.Ontology)
	if !ok {
		return fmt.Errorf("simmer: ontology %q not found in %s", ontoEntry.Ontology, cfgPath)
	}

	logger.Info("loading ontology", "name", ontoCfg.Name, "path", ontoCfg.Path)
	ont, err := ontology.LoadOWLFile(ontoCfg.Path)
	if err != nil {
		return err
	}

	logger.Info("loading annotation set", "name", ontoEntry.Name, "path", ontoEntry.Path)
	raws, err := annload.Load(ontoEntry.Path)
	if err != nil {
		return err
	}
	annSet, err := annotation.Build(ont, raws)
	if err != nil {
		return err
	}

	facade := query.NewFacade(map[string]*annotation.AnnotationSet{
		req.AnnSetName: annSet,
	}, labeler.Identity{}, logger)

	logger.Debug("running query", "method", req.Method, "namespace", req.Namespace, "kind", req.QueryKind)
	result, err := facade.Query(context.Background(), req)
	if err != nil {
		return err
	}

	switch v := result.(type) {
	case string:
		fmt.Println(v)
	default:
		fmt.Printf("%v\n", v)
	}
	return nil
}
