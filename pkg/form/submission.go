package form

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// InvalidError reports a submit attempt rejected by validation before
// the submit callback ran. It carries the per-field messages current
// at the time of the attempt.
type InvalidError struct {
	Fields map[string]string
}

func (e *InvalidError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("form: validation failed: %s", strings.Join(names, ", "))
}

// SubmitHook observes the submission pipeline. Before runs after
// validation passed and before the submit callback; After runs once
// the attempt settles, with the callback's outcome.
type SubmitHook struct {
	Before func(values Values)
	After  func(values Values, err error)
}

// HandleSubmit returns the handler to bind to the form's submit
// trigger. Each invocation marks the form submitting, force-validates
// every field, and only when all pass hands the value snapshot to
// onValid. Validation failures surface as *InvalidError without
// invoking onValid; a callback error is returned unmodified so outer
// error reporting can react. Either way the submitted flag is set and
// the submitting flag cleared before the handler returns.
//
// The handler does not guard against overlapping invocations; callers
// are expected to disable their submit trigger off the IsSubmitting
// flag while an attempt is in flight.
func (c *Controller) HandleSubmit(onValid SubmitFunc) func(context.Context) error {
	return func(ctx context.Context) error {
		if onValid == nil {
			return errors.New("form: submit callback is required")
		}
		if ctx == nil {
			ctx = context.Background()
		}

		c.submitting = true
		if !c.ValidateAll() {
			c.settle(false)
			return &InvalidError{Fields: c.registry.Errors()}
		}

		err := c.runSubmission(ctx, onValid)
		c.settle(err == nil)
		return err
	}
}

// runSubmission is the boundary between validated form data and caller
// business logic: the callback runs at most once per attempt and its
// error comes back unmodified, with no retry and no swallowing.
func (c *Controller) runSubmission(ctx context.Context, onValid SubmitFunc) error {
	values := c.registry.Values()
	for _, hook := range c.hooks {
		if hook.Before != nil {
			hook.Before(values)
		}
	}
	err := onValid(ctx, values)
	for _, hook := range c.hooks {
		if hook.After != nil {
			hook.After(values, err)
		}
	}
	return err
}

func (c *Controller) settle(succeeded bool) {
	c.submitting = false
	c.submitted = true
	c.succeeded = succeeded
}
