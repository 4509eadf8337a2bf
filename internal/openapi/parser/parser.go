// Package parser implements openapi.Parser using kin-openapi.
package parser

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formstate/pkg/definition"
	pkgopenapi "github.com/goliatone/go-formstate/pkg/openapi"
)

// Parser converts one operation's request body into a declarative form
// definition.
type Parser struct {
	options pkgopenapi.ParserOptions
}

var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) *Parser {
	return &Parser{options: options}
}

// FormDefinition locates operationID inside the document and maps its
// request body's top-level primitive properties onto field specs.
// Composite properties (objects, arrays) are skipped; the engine
// models flat value maps.
func (p *Parser) FormDefinition(ctx context.Context, doc pkgopenapi.Document, operationID string) (definition.Definition, error) {
	if err := ctx.Err(); err != nil {
		return definition.Definition{}, err
	}
	if operationID == "" {
		return definition.Definition{}, errors.New("openapi parser: operation id is required")
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return definition.Definition{}, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: p.options.ResolveReferences,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return definition.Definition{}, fmt.Errorf("openapi parser: load document: %w", err)
	}
	if p.options.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return definition.Definition{}, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return definition.Definition{}, fmt.Errorf("openapi parser: operation %q not found", operationID)
	}

	body := requestSchema(operation.RequestBody)
	if body == nil || len(body.Properties) == 0 {
		return definition.Definition{}, fmt.Errorf("openapi parser: operation %q has no object request body", operationID)
	}

	def := definition.Definition{
		Name:        operationID,
		Title:       operation.Summary,
		Description: operation.Description,
	}

	requiredSet := make(map[string]struct{}, len(body.Required))
	for _, name := range body.Required {
		requiredSet[name] = struct{}{}
	}

	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		_, required := requiredSet[name]
		field, ok := fieldFromProperty(name, ref.Value, required)
		if !ok {
			continue
		}
		def.Fields = append(def.Fields, field)
	}

	if len(def.Fields) == 0 {
		return definition.Definition{}, fmt.Errorf("openapi parser: operation %q yields no form fields", operationID)
	}
	return def, nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok {
			return schemaValue(mt.Schema)
		}
	}
	for _, mt := range content {
		return schemaValue(mt.Schema)
	}
	return nil
}

func schemaValue(ref *openapi3.SchemaRef) *openapi3.Schema {
	if ref == nil {
		return nil
	}
	return ref.Value
}

func fieldFromProperty(name string, src *openapi3.Schema, required bool) (definition.FieldSpec, bool) {
	kind, ok := mapKind(firstSchemaType(src.Type), src.Format)
	if !ok {
		return definition.FieldSpec{}, false
	}

	field := definition.FieldSpec{
		Name:     name,
		Kind:     kind,
		Label:    src.Title,
		Help:     src.Description,
		Default:  src.Default,
		Required: required,
		Pattern:  src.Pattern,
		Tag:      tagFromFormat(src.Format),
	}
	if src.MinLength != 0 {
		value := int(src.MinLength)
		field.MinLength = &value
	}
	if src.MaxLength != nil {
		value := int(*src.MaxLength)
		field.MaxLength = &value
	}
	return field, true
}

func mapKind(schemaType, format string) (definition.FieldKind, bool) {
	switch schemaType {
	case "string":
		if strings.EqualFold(format, "password") {
			return definition.KindSecret, true
		}
		return definition.KindString, true
	case "integer":
		return definition.KindInteger, true
	case "number":
		return definition.KindNumber, true
	case "boolean":
		return definition.KindBoolean, true
	default:
		// Objects, arrays, and typeless schemas do not map onto a flat
		// field.
		return "", false
	}
}

func tagFromFormat(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "email":
		return "email"
	case "uri", "url", "uri-reference":
		return "url"
	case "uuid":
		return "uuid"
	case "hostname":
		return "hostname"
	case "ipv4":
		return "ipv4"
	case "ipv6":
		return "ipv6"
	default:
		return ""
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
