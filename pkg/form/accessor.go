package form

// Accessor is the per-field handle returned by Register. The
// presentation layer binds its input events through Set and Touch and
// reads error state back through the same handle. The zero Accessor is
// inert: every method is a no-op returning zero values.
type Accessor struct {
	name       string
	controller *Controller
}

// Name returns the field name the accessor is bound to.
func (a Accessor) Name() string {
	return a.name
}

// Get returns the field's current value.
func (a Accessor) Get() any {
	if a.controller == nil {
		return nil
	}
	return a.controller.Value(a.name)
}

// Set applies a change event: the value is stored and the field
// revalidated only once touched.
func (a Accessor) Set(value any) {
	if a.controller == nil {
		return
	}
	a.controller.HandleChange(a.name, value)
}

// Touch applies a blur event: the field is marked touched and
// validated.
func (a Accessor) Touch() {
	if a.controller == nil {
		return
	}
	a.controller.HandleBlur(a.name)
}

// Validate force-validates the field and returns the error message.
func (a Accessor) Validate() string {
	if a.controller == nil {
		return ""
	}
	return a.controller.Validate(a.name)
}

// Error returns the field's current error message.
func (a Accessor) Error() string {
	if a.controller == nil {
		return ""
	}
	return a.controller.Error(a.name)
}

// State snapshots the field; ok is false when the accessor is inert.
func (a Accessor) State() (FieldState, bool) {
	if a.controller == nil {
		return FieldState{}, false
	}
	return a.controller.FieldState(a.name)
}
