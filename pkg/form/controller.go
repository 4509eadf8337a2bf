package form

import "context"

// SubmitFunc is the caller-supplied business logic invoked with the
// validated value map once every field passes validation. Its error is
// returned to the submit handler's caller unmodified; retry and
// backoff policy, if any, live inside the function.
type SubmitFunc func(ctx context.Context, values Values) error

// State is the aggregate form status derived from the field set plus
// the submission flags.
type State struct {
	// IsValid is true when no registered field carries an error.
	IsValid bool
	// IsDirty is true once any field's value differs from its baseline.
	IsDirty bool
	// IsSubmitting is true between submit start and settle.
	IsSubmitting bool
	// IsSubmitted is true once any submit attempt has completed and
	// stays true across later attempts.
	IsSubmitted bool
	// IsSubmitSuccessful reflects the most recent completed attempt.
	IsSubmitSuccessful bool
	// Errors maps failing field names to their messages.
	Errors map[string]string
}

// Option customises a Controller at construction time.
type Option func(*Controller)

// WithSanitizedStrings pipes every string value through a strict HTML
// sanitizer before it reaches the registry. Off by default so values
// round-trip byte for byte.
func WithSanitizedStrings() Option {
	return func(c *Controller) {
		c.sanitize = true
	}
}

// WithSubmitHooks registers observers that run around the submission
// pipeline for every attempt that clears validation.
func WithSubmitHooks(hooks ...SubmitHook) Option {
	return func(c *Controller) {
		c.hooks = append(c.hooks, hooks...)
	}
}

// Controller is the stateful orchestrator bound to one rendered form
// instance. It composes the field registry with rule evaluation and
// exposes the form's external contract: register fields, feed
// change/blur events in, read errors and aggregate state out, and bind
// the handler returned by HandleSubmit to the form's submit trigger.
//
// A Controller is not safe for concurrent use; construct one per form
// and drive it from a single event loop. Edits made while a submit is
// in flight land in the registry immediately and show up on the next
// attempt; the controller neither queues nor cancels.
type Controller struct {
	registry *Registry
	hooks    []SubmitHook
	sanitize bool

	submitting bool
	submitted  bool
	succeeded  bool
}

// New constructs a Controller applying any provided options.
func New(options ...Option) *Controller {
	c := &Controller{registry: NewRegistry()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Register adds the named field with an optional rule and returns an
// accessor bound to it. Registering an existing name swaps the rule
// but preserves the field's value and interaction state, so repeated
// registration from re-renders is harmless.
func (c *Controller) Register(name string, rule *Rule) Accessor {
	if name == "" {
		return Accessor{}
	}
	c.registry.Register(name, rule)
	return Accessor{name: name, controller: c}
}

// SetOptions controls the side effects of SetValue.
type SetOptions struct {
	// Validate forces validation of the field even when it has not
	// been touched yet.
	Validate bool
	// Touch marks the field as interacted with before validating.
	Touch bool
}

// SetValue overwrites the field's value, recomputes its dirty flag,
// and validates the single field when requested or when the field has
// already been touched. Unregistered names are ignored.
func (c *Controller) SetValue(name string, value any, opts SetOptions) {
	if !c.registry.Has(name) {
		return
	}
	c.registry.SetValue(name, c.clean(value))
	if opts.Touch {
		c.registry.Touch(name)
	}
	if opts.Validate || c.registry.Touched(name) {
		c.validateField(name)
	}
}

// SetDefault seeds the field's initial value, which doubles as the
// dirty baseline.
func (c *Controller) SetDefault(name string, value any) {
	c.registry.SetInitial(name, c.clean(value))
}

// HandleChange applies an edit coming from the presentation layer. The
// field is only revalidated once it has been touched, so users are not
// flagged mid-typing on a pristine field.
func (c *Controller) HandleChange(name string, value any) {
	c.SetValue(name, value, SetOptions{})
}

// HandleBlur marks the field as touched and validates it.
func (c *Controller) HandleBlur(name string) {
	if !c.registry.Has(name) {
		return
	}
	c.registry.Touch(name)
	c.validateField(name)
}

// Validate force-validates a single field, marking it touched, and
// returns the resulting error message ("" when valid).
func (c *Controller) Validate(name string) string {
	if !c.registry.Has(name) {
		return ""
	}
	c.registry.Touch(name)
	return c.validateField(name)
}

// ValidateAll force-touches and validates every registered field and
// reports whether the whole form is valid. This is the one path where
// validation runs form-wide rather than per field.
func (c *Controller) ValidateAll() bool {
	valid := true
	for _, name := range c.registry.Names() {
		c.registry.Touch(name)
		if c.validateField(name) != "" {
			valid = false
		}
	}
	return valid
}

func (c *Controller) validateField(name string) string {
	value, _ := c.registry.Value(name)
	msg := Evaluate(value, c.registry.Rule(name), c.registry.Values())
	c.registry.SetError(name, msg)
	return msg
}

// Value returns the field's current value, nil for unregistered names.
func (c *Controller) Value(name string) any {
	value, _ := c.registry.Value(name)
	return value
}

// Values snapshots every registered value keyed by field name.
func (c *Controller) Values() Values {
	return c.registry.Values()
}

// SetError overrides the field's error directly, the escape hatch for
// surfacing server-side failures outside the rule pipeline. Touched
// and dirty are untouched.
func (c *Controller) SetError(name, msg string) {
	c.registry.SetError(name, msg)
}

// Error returns the field's current error message, "" when clear.
func (c *Controller) Error(name string) string {
	return c.registry.Error(name)
}

// Errors returns the failing fields and their messages.
func (c *Controller) Errors() map[string]string {
	return c.registry.Errors()
}

// FieldState snapshots a single field; ok is false for unregistered
// names.
func (c *Controller) FieldState(name string) (FieldState, bool) {
	return c.registry.FieldState(name)
}

// State derives the aggregate form status.
func (c *Controller) State() State {
	return State{
		IsValid:            c.registry.Valid(),
		IsDirty:            c.registry.Dirty(),
		IsSubmitting:       c.submitting,
		IsSubmitted:        c.submitted,
		IsSubmitSuccessful: c.succeeded,
		Errors:             c.registry.Errors(),
	}
}

// Reset restores every field to its initial value and clears the
// submission flags.
func (c *Controller) Reset() {
	c.registry.Reset()
	c.submitting = false
	c.submitted = false
	c.succeeded = false
}

// ResetField restores a single field to its initial value.
func (c *Controller) ResetField(name string) {
	c.registry.ResetField(name)
}

func (c *Controller) clean(value any) any {
	if !c.sanitize {
		return value
	}
	if str, ok := value.(string); ok {
		return sanitizeText(str)
	}
	return value
}
