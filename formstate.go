// Package formstate is the top-level facade for the form engine: it
// re-exports the public surface of pkg/form and pkg/definition and
// wires the internal OpenAPI loader/parser implementations behind
// their public contracts.
package formstate

import (
	"context"

	internalLoader "github.com/goliatone/go-formstate/internal/openapi/loader"
	internalParser "github.com/goliatone/go-formstate/internal/openapi/parser"
	"github.com/goliatone/go-formstate/pkg/definition"
	"github.com/goliatone/go-formstate/pkg/form"
	pkgopenapi "github.com/goliatone/go-formstate/pkg/openapi"
)

// Core engine types re-exported for convenience.
type (
	Controller   = form.Controller
	Rule         = form.Rule
	Messages     = form.Messages
	Values       = form.Values
	State        = form.State
	FieldState   = form.FieldState
	Accessor     = form.Accessor
	SubmitFunc   = form.SubmitFunc
	SubmitHook   = form.SubmitHook
	InvalidError = form.InvalidError

	Definition = definition.Definition
	FieldSpec  = definition.FieldSpec
)

// New constructs a form controller; one per rendered form instance.
func New(options ...form.Option) *form.Controller {
	return form.New(options...)
}

// WithSanitizedStrings re-exports the controller option.
func WithSanitizedStrings() form.Option {
	return form.WithSanitizedStrings()
}

// WithSubmitHooks re-exports the controller option.
func WithSubmitHooks(hooks ...form.SubmitHook) form.Option {
	return form.WithSubmitHooks(hooks...)
}

// LoadDefinition reads a YAML form definition from disk.
func LoadDefinition(path string) (definition.Definition, error) {
	return definition.ParseFile(path)
}

// NewLoader constructs an OpenAPI loader using the internal
// implementation while keeping the concrete type hidden.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	return internalLoader.New(pkgopenapi.NewLoaderOptions(options...))
}

// NewParser constructs an OpenAPI parser backed by the internal
// implementation.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	return internalParser.New(pkgopenapi.NewParserOptions(options...))
}

// DefinitionFromOpenAPI loads an OpenAPI document and derives the form
// definition for the named operation. Loading stays offline-first:
// URL sources need a loader option enabling HTTP.
func DefinitionFromOpenAPI(ctx context.Context, src pkgopenapi.Source, operationID string, options ...pkgopenapi.LoaderOption) (definition.Definition, error) {
	doc, err := NewLoader(options...).Load(ctx, src)
	if err != nil {
		return definition.Definition{}, err
	}
	return NewParser().FormDefinition(ctx, doc, operationID)
}
