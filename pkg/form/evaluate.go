package form

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	defaultRequiredMessage = "a value is required"
	defaultPatternMessage  = "value does not match the expected pattern"
	fallbackCheckMessage   = "value failed validation"
)

// Evaluate checks value against rule and returns the failure message
// for the first constraint that rejects it, or "" when the value is
// valid. A nil rule always passes. The all snapshot is only consulted
// by the rule's custom check.
func Evaluate(value any, rule *Rule, all Values) string {
	if rule == nil {
		return ""
	}

	if rule.Required && isAbsent(value) {
		return message(rule.Messages.Required, defaultRequiredMessage)
	}

	if str, ok := value.(string); ok && str != "" {
		if rule.Pattern != nil && !rule.Pattern.MatchString(str) {
			return message(rule.Messages.Pattern, defaultPatternMessage)
		}
		length := utf8.RuneCountInString(str)
		if rule.MinLength != nil && length < *rule.MinLength {
			return message(rule.Messages.MinLength,
				fmt.Sprintf("must be at least %d characters", *rule.MinLength))
		}
		if rule.MaxLength != nil && length > *rule.MaxLength {
			return message(rule.Messages.MaxLength,
				fmt.Sprintf("must be at most %d characters", *rule.MaxLength))
		}
	}

	if rule.Check != nil {
		if err := rule.Check(value, all); err != nil {
			if msg := strings.TrimSpace(err.Error()); msg != "" {
				return msg
			}
			return fallbackCheckMessage
		}
	}

	return ""
}

// isAbsent mirrors the required-check contract: nil, "" and false are
// missing; every other present value (including 0) counts.
func isAbsent(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	default:
		return false
	}
}

func message(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}
