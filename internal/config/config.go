// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config implements the configuration surface: a YAML document
// naming the ontologies and annotation sets the core consumes.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Ontology names a single ontology source file to load.
type Ontology struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	// Format names the loader this path requires, e.g. "owl". Only "owl"
	// is implemented by internal/ontology today.
	Format string `yaml:"format"`
}

// AnnotationSet names a single annotation source file and the ontology it
// is defined against.
type AnnotationSet struct {
	Name       string `yaml:"name"`
	Path       string `yaml:"path"`
	Ontology   string `yaml:"ontology"`
	ObjectType string `yaml:"objectType"`
}

// Config is the top-level configuration document.
type Config struct {
	Ontologies     []Ontology      `yaml:"ontologies"`
	AnnotationSets []AnnotationSet `yaml:"annotationSets"`
}

// Load reads and parses a configuration document from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &c, nil
}

// OntologyByName returns the named ontology entry, or false if not configured.
func (c *Config) OntologyByName(name string) (Ontology, bool) {
	for _, o := range c.Ontologies {
		if o.Name == name {
			return o, true
		}
	}
	return Ontology{}, false
}

// AnnotationSetByName returns the named annotation-set entry, or false if
// not configured.
func (c *Config) AnnotationSetByName(name string) (AnnotationSet, bool) {
	for _, a := range c.AnnotationSets {
		if a.Name == name {
			return a, true
		}
	}
	return AnnotationSet{}, false
}
