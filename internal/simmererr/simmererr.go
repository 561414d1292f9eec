// Copyright ©2026 The Simmer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simmererr defines the error kinds surfaced by the query facade.
package simmererr

import "fmt"

// Kind identifies the category of a facade error.
type Kind int

const (
	_ Kind = iota
	// InvalidAnnSet indicates an unknown annotation-set name.
	InvalidAnnSet
	// InvalidMethod indicates an unknown similarity method name or an
	// unknown output format name.
	InvalidMethod
	// InvalidQueryKind indicates a query kind that is neither "object" nor "list".
	InvalidQueryKind
	// InvalidLength indicates a negative result length.
	InvalidLength
	// InvalidNamespace indicates a namespace not present in the ontology.
	InvalidNamespace
	// InvalidQueryTerm indicates a term id in a list query that was not found.
	InvalidQueryTerm
	// BuildFailure indicates that precomputing a compiled annotation set failed.
	BuildFailure
	// Cancelled indicates the query's context was cancelled before it finished.
	Cancelled
)

func (k Kind) String() string {
	switch k {
	case InvalidAnnSet:
		return "InvalidAnnSet"
	case InvalidMethod:
		return "InvalidMethod"
	case InvalidQueryKind:
		return "InvalidQueryKind"
	case InvalidLength:
		return "InvalidLength"
	case InvalidNamespace:
		return "InvalidNamespace"
	case InvalidQueryTerm:
		return "InvalidQueryTerm"
	case BuildFailure:
		return "BuildFailure"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Error is a structured facade error: a Kind plus a human-readable message
// and, for BuildFailure, the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}

// New returns a new facade error of the given kind.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns a new BuildFailure-style error of the given kind carrying cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}
