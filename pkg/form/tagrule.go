package form

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	tagValidatorOnce sync.Once
	tagValidator     *validator.Validate
)

// TagRule adapts a go-playground/validator tag expression (for example
// "email" or "url") into a CheckFunc usable as a Rule custom check.
// Absent values pass so the rule composes with Required instead of
// duplicating it.
func TagRule(tag string) CheckFunc {
	return func(value any, _ Values) error {
		if isAbsent(value) {
			return nil
		}
		if err := sharedTagValidator().Var(value, tag); err != nil {
			return fmt.Errorf("value does not satisfy %q", tag)
		}
		return nil
	}
}

func sharedTagValidator() *validator.Validate {
	tagValidatorOnce.Do(func() {
		tagValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return tagValidator
}
