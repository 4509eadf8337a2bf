// Package form implements the runtime engine behind an interactive
// form: a registry of named fields, a rule evaluator, and a controller
// that orchestrates change/blur/submit events into validation runs and
// a guarded submission pipeline.
//
// One Controller is constructed per form instance and passed explicitly
// to every call site that edits or reads the form; there is no ambient
// shared state. The engine is callback-free: the presentation layer
// forwards its native events through plain method calls
// (HandleChange, HandleBlur, the handler returned by HandleSubmit) and
// reads plain data back (Errors, State).
//
// The engine owns no rendering, styling, or transport concerns. Any
// network call happens inside the caller-supplied submit function and
// is entirely opaque to the controller.
package form
