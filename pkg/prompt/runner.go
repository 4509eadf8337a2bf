// Package prompt walks a form definition through an interactive
// terminal session, feeding answers into a form controller exactly the
// way a browser form would: change, then blur, then a guarded submit.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/goliatone/go-formstate/pkg/definition"
	"github.com/goliatone/go-formstate/pkg/form"
)

// Option customises a Runner.
type Option func(*Runner)

// WithDriver swaps the terminal implementation, used by tests and by
// callers embedding the runner elsewhere.
func WithDriver(driver Driver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// Runner drives one form definition through a prompt session against a
// controller.
type Runner struct {
	driver     Driver
	controller *form.Controller
	def        definition.Definition
	rules      map[string]*form.Rule
}

// New applies the definition onto the controller and returns a Runner
// ready to Run. Registration is idempotent, so a controller that
// already carries the definition is fine.
func New(def definition.Definition, controller *form.Controller, options ...Option) (*Runner, error) {
	if controller == nil {
		return nil, errors.New("prompt: controller is required")
	}
	if err := def.Apply(controller); err != nil {
		return nil, err
	}

	rules := make(map[string]*form.Rule, len(def.Fields))
	for _, spec := range def.Fields {
		rule, err := spec.CompileRule()
		if err != nil {
			return nil, err
		}
		rules[spec.Name] = rule
	}

	r := &Runner{
		driver:     NewSurveyDriver(),
		controller: controller,
		def:        def,
		rules:      rules,
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

// Run prompts for every field in definition order, asks for a final
// confirmation, and submits through the controller. The submitted
// value map is returned on success. A declined confirmation or an
// interrupt surfaces as ErrAborted; validation failures and submit
// callback errors propagate from the controller's handler.
func (r *Runner) Run(ctx context.Context, onValid form.SubmitFunc) (form.Values, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if r.def.Title != "" {
		if err := r.driver.Info(ctx, r.def.Title); err != nil {
			return nil, err
		}
	}

	for _, spec := range r.def.Fields {
		if err := r.askField(ctx, spec); err != nil {
			return nil, err
		}
	}

	confirmed, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: r.submitMessage(),
		Default: true,
	})
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, ErrAborted
	}

	if err := r.controller.HandleSubmit(onValid)(ctx); err != nil {
		return nil, err
	}
	return r.controller.Values(), nil
}

func (r *Runner) askField(ctx context.Context, spec definition.FieldSpec) error {
	name := spec.Name

	if spec.IsBoolean() {
		current, _ := r.controller.Value(name).(bool)
		answer, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: fieldLabel(spec),
			Default: current,
			Help:    spec.Help,
		})
		if err != nil {
			return err
		}
		r.controller.HandleChange(name, answer)
		r.controller.HandleBlur(name)
		return nil
	}

	cfg := InputConfig{
		Message:   fieldLabel(spec),
		Help:      spec.Help,
		Validator: r.validator(spec),
	}

	ask := r.driver.Input
	if spec.IsSecret() {
		ask = r.driver.Password
	} else {
		cfg.Default = valueString(r.controller.Value(name))
	}

	raw, err := ask(ctx, cfg)
	if err != nil {
		return err
	}
	value, err := spec.Coerce(raw)
	if err != nil {
		// The driver validator vets answers before acceptance; a coercion
		// failure here means the driver skipped validation.
		return fmt.Errorf("prompt: field %q: %w", name, err)
	}
	r.controller.HandleChange(name, value)
	r.controller.HandleBlur(name)
	return nil
}

// validator vets a candidate answer without mutating the controller:
// coerce first, then evaluate against the compiled rule and the
// current value snapshot.
func (r *Runner) validator(spec definition.FieldSpec) func(string) error {
	rule := r.rules[spec.Name]
	return func(raw string) error {
		value, err := spec.Coerce(raw)
		if err != nil {
			return err
		}
		if msg := form.Evaluate(value, rule, r.controller.Values()); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}

func (r *Runner) submitMessage() string {
	if r.def.SubmitLabel != "" {
		return r.def.SubmitLabel + "?"
	}
	return "Submit?"
}

func fieldLabel(spec definition.FieldSpec) string {
	if spec.Label != "" {
		return spec.Label
	}
	return spec.Name
}

func valueString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
