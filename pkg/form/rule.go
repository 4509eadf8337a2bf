package form

import "regexp"

// Values is a snapshot of every registered field's current value keyed
// by field name.
type Values map[string]any

// CheckFunc is a custom validation hook. It receives the candidate
// value plus a snapshot of all registered values so cross-field rules
// ("confirm equals password") stay expressible. A nil return means the
// value passes; otherwise the error text becomes the field error. An
// error with an empty message falls back to a generic failure message.
type CheckFunc func(value any, all Values) error

// Messages overrides the built-in failure text per constraint. Empty
// entries keep the default.
type Messages struct {
	Required  string
	Pattern   string
	MinLength string
	MaxLength string
}

// Rule is the declarative constraint set attached to a field at
// registration time. Constraints run in a fixed priority order
// (required, pattern, min length, max length, custom check) and only
// the first failure is reported.
type Rule struct {
	// Required rejects absent values. Nil, the empty string, and false
	// count as absent; other present-but-falsy values such as 0 do not.
	Required bool

	// MinLength and MaxLength bound string values by rune count. Nil
	// means unbounded. Like Pattern they only apply to non-empty
	// strings, so an empty optional field never fails them.
	MinLength *int
	MaxLength *int

	// Pattern must match non-empty string values.
	Pattern *regexp.Regexp

	// Check runs last, after every declarative constraint passed.
	Check CheckFunc

	// Messages customises the failure text for the declarative
	// constraints. The Check error carries its own message.
	Messages Messages
}

// Length returns a pointer suitable for Rule.MinLength and
// Rule.MaxLength literals.
func Length(n int) *int { return &n }
