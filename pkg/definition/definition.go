// Package definition describes forms declaratively: named fields with
// kinds, constraints, and defaults, typically authored in YAML or
// derived from an OpenAPI operation. A Definition compiles into
// engine rules and registers itself onto a form.Controller.
package definition

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldKind enumerates the input kinds the engine understands.
type FieldKind string

const (
	KindString  FieldKind = "string"
	KindSecret  FieldKind = "secret"
	KindBoolean FieldKind = "boolean"
	KindInteger FieldKind = "integer"
	KindNumber  FieldKind = "number"
)

// FieldSpec declares one field: identity, kind, and the constraint set
// compiled into an engine rule.
type FieldSpec struct {
	Name        string    `yaml:"name" json:"name"`
	Kind        FieldKind `yaml:"kind,omitempty" json:"kind,omitempty"`
	Label       string    `yaml:"label,omitempty" json:"label,omitempty"`
	Help        string    `yaml:"help,omitempty" json:"help,omitempty"`
	Placeholder string    `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Default     any       `yaml:"default,omitempty" json:"default,omitempty"`

	Required  bool   `yaml:"required,omitempty" json:"required,omitempty"`
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Tag is a go-playground/validator tag expression compiled into the
	// rule's custom check, e.g. "email" or "url".
	Tag string `yaml:"tag,omitempty" json:"tag,omitempty"`

	// Messages overrides failure text per constraint, keyed by
	// "required", "pattern", "minLength", or "maxLength".
	Messages map[string]string `yaml:"messages,omitempty" json:"messages,omitempty"`
}

// Definition is the top-level declarative form document.
type Definition struct {
	Name        string      `yaml:"name" json:"name"`
	Title       string      `yaml:"title,omitempty" json:"title,omitempty"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	SubmitLabel string      `yaml:"submitLabel,omitempty" json:"submitLabel,omitempty"`
	Fields      []FieldSpec `yaml:"fields" json:"fields"`
}

// Parse decodes a YAML definition document and validates it.
func Parse(raw []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return Definition{}, fmt.Errorf("definition: decode: %w", err)
	}
	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// ParseFile reads and decodes a YAML definition from disk.
func ParseFile(path string) (Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("definition: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Validate performs structural checks: every field needs a unique name
// and a known kind. Constraint compilation (pattern syntax) is checked
// by CompileRule.
func (d Definition) Validate() error {
	if len(d.Fields) == 0 {
		return fmt.Errorf("definition: at least one field is required")
	}
	seen := make(map[string]struct{}, len(d.Fields))
	for i, spec := range d.Fields {
		name := strings.TrimSpace(spec.Name)
		if name == "" {
			return fmt.Errorf("definition: field %d: name is required", i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("definition: duplicate field %q", name)
		}
		seen[name] = struct{}{}
		if !spec.Kind.known() {
			return fmt.Errorf("definition: field %q: unknown kind %q", name, spec.Kind)
		}
	}
	return nil
}

// Field returns the spec for name; ok is false when absent.
func (d Definition) Field(name string) (FieldSpec, bool) {
	for _, spec := range d.Fields {
		if spec.Name == name {
			return spec, true
		}
	}
	return FieldSpec{}, false
}

func (k FieldKind) known() bool {
	switch k {
	case "", KindString, KindSecret, KindBoolean, KindInteger, KindNumber:
		return true
	}
	return false
}

// kind returns the effective kind, defaulting to string.
func (s FieldSpec) kind() FieldKind {
	if s.Kind == "" {
		return KindString
	}
	return s.Kind
}

// IsSecret reports whether the field holds a value that must not be
// echoed back.
func (s FieldSpec) IsSecret() bool {
	return s.kind() == KindSecret
}

// IsBoolean reports whether the field is a yes/no toggle.
func (s FieldSpec) IsBoolean() bool {
	return s.kind() == KindBoolean
}
