package definition

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-formstate/pkg/form"
)

// CompileRule turns the declarative constraint set into an engine
// rule. Specs without constraints compile to nil so unruled fields
// skip evaluation entirely.
func (s FieldSpec) CompileRule() (*form.Rule, error) {
	rule := &form.Rule{
		Required:  s.Required,
		MinLength: s.MinLength,
		MaxLength: s.MaxLength,
		Messages: form.Messages{
			Required:  s.Messages["required"],
			Pattern:   s.Messages["pattern"],
			MinLength: s.Messages["minLength"],
			MaxLength: s.Messages["maxLength"],
		},
	}

	if s.Pattern != "" {
		compiled, err := regexp.Compile(s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("definition: field %q: compile pattern: %w", s.Name, err)
		}
		rule.Pattern = compiled
	}
	if tag := strings.TrimSpace(s.Tag); tag != "" {
		rule.Check = form.TagRule(tag)
	}

	if !rule.Required && rule.Pattern == nil && rule.Check == nil &&
		rule.MinLength == nil && rule.MaxLength == nil {
		return nil, nil
	}
	return rule, nil
}

// Apply compiles every field and registers it on the controller,
// seeding declared defaults as initial values. Registration is
// idempotent, so applying the same definition twice is harmless.
func (d Definition) Apply(c *form.Controller) error {
	if c == nil {
		return fmt.Errorf("definition: controller is required")
	}
	if err := d.Validate(); err != nil {
		return err
	}
	for _, spec := range d.Fields {
		rule, err := spec.CompileRule()
		if err != nil {
			return err
		}
		c.Register(spec.Name, rule)
		if spec.Default != nil {
			c.SetDefault(spec.Name, spec.Default)
		} else if spec.IsBoolean() {
			c.SetDefault(spec.Name, false)
		}
	}
	return nil
}

// Coerce converts raw textual input into the field's value type, the
// bridge between line-oriented frontends and the typed value map.
func (s FieldSpec) Coerce(raw string) (any, error) {
	switch s.kind() {
	case KindInteger:
		if strings.TrimSpace(raw) == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("must be a whole number")
		}
		return n, nil
	case KindNumber:
		if strings.TrimSpace(raw) == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("must be a number")
		}
		return f, nil
	case KindBoolean:
		if strings.TrimSpace(raw) == "" {
			return false, nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("must be true or false")
		}
		return b, nil
	default:
		return raw, nil
	}
}
