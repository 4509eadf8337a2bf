package openapi

import (
	"context"

	"github.com/goliatone/go-formstate/pkg/definition"
)

// Parser extracts a declarative form definition from one operation of
// an OpenAPI document.
type Parser interface {
	FormDefinition(ctx context.Context, doc Document, operationID string) (definition.Definition, error)
}

// ParserOptions exposes parsing toggles.
type ParserOptions struct {
	// ResolveReferences controls whether the parser validates the
	// document and eagerly resolves $ref pointers. Defaults to true.
	ResolveReferences bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithReferenceResolution toggles eager reference resolution.
func WithReferenceResolution(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.ResolveReferences = enabled
	}
}

// NewParserOptions applies ParserOption functions over the defaults.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{ResolveReferences: true}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
