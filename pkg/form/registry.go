package form

import "reflect"

// field is the registry entry backing one named input.
type field struct {
	rule    *Rule
	value   any
	initial any
	touched bool
	dirty   bool
	errMsg  string
}

// FieldState is a read-only snapshot of a single field.
type FieldState struct {
	Value   any
	Touched bool
	Dirty   bool
	Error   string
}

// Registry is the single source of truth for the fields of one form
// instance. Entries are created by Register and live for the lifetime
// of the owning controller; there is no partial removal API, only
// Reset. Lookups for unregistered names are deliberate no-ops so the
// registry tolerates races between rendering and registration.
//
// A Registry is not safe for concurrent use. Each rendered form owns
// exactly one, driven from a single event loop.
type Registry struct {
	fields map[string]*field
	order  []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{fields: make(map[string]*field)}
}

// Register creates the entry for name, or updates its rule when the
// entry already exists. Value, touched, dirty, and error state survive
// re-registration.
func (r *Registry) Register(name string, rule *Rule) {
	if name == "" {
		return
	}
	if entry, ok := r.fields[name]; ok {
		entry.rule = rule
		return
	}
	r.fields[name] = &field{rule: rule}
	r.order = append(r.order, name)
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.fields[name]
	return ok
}

// Names returns the registered field names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Rule returns the rule attached to name, nil when absent or unruled.
func (r *Registry) Rule(name string) *Rule {
	entry, ok := r.fields[name]
	if !ok {
		return nil
	}
	return entry.rule
}

// SetValue overwrites the field's value and recomputes its dirty flag
// against the initial value captured at registration time.
func (r *Registry) SetValue(name string, value any) {
	entry, ok := r.fields[name]
	if !ok {
		return
	}
	entry.value = value
	entry.dirty = !equalValues(value, entry.initial)
}

// SetInitial seeds the field's default value and the dirty baseline.
// An already-edited field keeps its current value; only the baseline
// moves.
func (r *Registry) SetInitial(name string, value any) {
	entry, ok := r.fields[name]
	if !ok {
		return
	}
	entry.initial = value
	if !entry.dirty && !entry.touched {
		entry.value = value
	}
	entry.dirty = !equalValues(entry.value, entry.initial)
}

// Value returns the field's current value; ok is false for
// unregistered names.
func (r *Registry) Value(name string) (any, bool) {
	entry, ok := r.fields[name]
	if !ok {
		return nil, false
	}
	return entry.value, true
}

// Values returns a snapshot of every registered value keyed by name.
func (r *Registry) Values() Values {
	out := make(Values, len(r.fields))
	for name, entry := range r.fields {
		out[name] = entry.value
	}
	return out
}

// SetError overwrites the field's error message directly, bypassing
// rule evaluation. Touched and dirty are left alone so server-side
// errors can be surfaced without pretending the user interacted with
// the field. An empty message clears the error.
func (r *Registry) SetError(name, msg string) {
	entry, ok := r.fields[name]
	if !ok {
		return
	}
	entry.errMsg = msg
}

// Error returns the field's current error message, "" when valid,
// unvalidated, or unregistered.
func (r *Registry) Error(name string) string {
	entry, ok := r.fields[name]
	if !ok {
		return ""
	}
	return entry.errMsg
}

// Errors returns the failing fields and their messages.
func (r *Registry) Errors() map[string]string {
	out := make(map[string]string)
	for name, entry := range r.fields {
		if entry.errMsg != "" {
			out[name] = entry.errMsg
		}
	}
	return out
}

// Touch marks the field as interacted with.
func (r *Registry) Touch(name string) {
	if entry, ok := r.fields[name]; ok {
		entry.touched = true
	}
}

// Touched reports whether the field has been interacted with.
func (r *Registry) Touched(name string) bool {
	entry, ok := r.fields[name]
	return ok && entry.touched
}

// Dirty reports whether any field's value differs from its baseline.
func (r *Registry) Dirty() bool {
	for _, entry := range r.fields {
		if entry.dirty {
			return true
		}
	}
	return false
}

// Valid reports whether no field currently carries an error.
func (r *Registry) Valid() bool {
	for _, entry := range r.fields {
		if entry.errMsg != "" {
			return false
		}
	}
	return true
}

// FieldState snapshots a single field; ok is false for unregistered
// names.
func (r *Registry) FieldState(name string) (FieldState, bool) {
	entry, ok := r.fields[name]
	if !ok {
		return FieldState{}, false
	}
	return FieldState{
		Value:   entry.value,
		Touched: entry.touched,
		Dirty:   entry.dirty,
		Error:   entry.errMsg,
	}, true
}

// ResetField restores one field to its initial value and clears its
// touched/dirty/error state.
func (r *Registry) ResetField(name string) {
	entry, ok := r.fields[name]
	if !ok {
		return
	}
	entry.value = entry.initial
	entry.touched = false
	entry.dirty = false
	entry.errMsg = ""
}

// Reset restores every field to its initial value.
func (r *Registry) Reset() {
	for _, name := range r.order {
		r.ResetField(name)
	}
}

// equalValues compares scalars with == when possible and falls back to
// DeepEqual for anything uncomparable.
func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
