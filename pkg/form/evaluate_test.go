package form

import (
	"errors"
	"regexp"
	"testing"
)

func TestEvaluateNilRuleAlwaysPasses(t *testing.T) {
	for _, value := range []any{nil, "", "anything", 0, false, 3.14} {
		if msg := Evaluate(value, nil, nil); msg != "" {
			t.Fatalf("nil rule rejected %#v: %q", value, msg)
		}
	}
}

func TestEvaluateRequiredAbsence(t *testing.T) {
	rule := &Rule{Required: true}

	for _, absent := range []any{nil, "", false} {
		if msg := Evaluate(absent, rule, nil); msg == "" {
			t.Fatalf("expected required failure for %#v", absent)
		}
	}

	// Present-but-falsy values are not missing.
	for _, present := range []any{0, 0.0, "0", true} {
		if msg := Evaluate(present, rule, nil); msg != "" {
			t.Fatalf("required rejected present value %#v: %q", present, msg)
		}
	}
}

func TestEvaluateReportsFirstFailureOnly(t *testing.T) {
	rule := &Rule{
		Required: true,
		Pattern:  regexp.MustCompile(`^\S+@\S+\.\S+$`),
	}

	// Empty value fails both required and pattern; required wins.
	if msg := Evaluate("", rule, nil); msg != defaultRequiredMessage {
		t.Fatalf("expected required message, got %q", msg)
	}
	if msg := Evaluate("not-an-email", rule, nil); msg != defaultPatternMessage {
		t.Fatalf("expected pattern message, got %q", msg)
	}
}

func TestEvaluatePatternSkipsEmptyOptional(t *testing.T) {
	rule := &Rule{Pattern: regexp.MustCompile(`^\d+$`)}
	if msg := Evaluate("", rule, nil); msg != "" {
		t.Fatalf("empty optional field failed pattern: %q", msg)
	}
}

func TestEvaluateLengthBounds(t *testing.T) {
	rule := &Rule{MinLength: Length(3), MaxLength: Length(5)}

	if msg := Evaluate("ab", rule, nil); msg != "must be at least 3 characters" {
		t.Fatalf("min length message mismatch: %q", msg)
	}
	if msg := Evaluate("abcdef", rule, nil); msg != "must be at most 5 characters" {
		t.Fatalf("max length message mismatch: %q", msg)
	}
	if msg := Evaluate("abcd", rule, nil); msg != "" {
		t.Fatalf("in-bounds value rejected: %q", msg)
	}
	// Length counts runes, not bytes.
	if msg := Evaluate("héllo", rule, nil); msg != "" {
		t.Fatalf("rune counting broken: %q", msg)
	}
	// Empty optional strings skip length checks like they skip pattern.
	if msg := Evaluate("", rule, nil); msg != "" {
		t.Fatalf("empty optional field failed length bounds: %q", msg)
	}
}

func TestEvaluateCustomCheckSeesAllValues(t *testing.T) {
	rule := &Rule{
		Check: func(value any, all Values) error {
			if value != all["password"] {
				return errors.New("Passwords do not match")
			}
			return nil
		},
	}
	all := Values{"password": "abc"}

	if msg := Evaluate("xyz", rule, all); msg != "Passwords do not match" {
		t.Fatalf("cross-field mismatch not reported: %q", msg)
	}
	if msg := Evaluate("abc", rule, all); msg != "" {
		t.Fatalf("matching value rejected: %q", msg)
	}
}

func TestEvaluateCustomCheckFallbackMessage(t *testing.T) {
	rule := &Rule{Check: func(any, Values) error { return errors.New("  ") }}
	if msg := Evaluate("x", rule, nil); msg != fallbackCheckMessage {
		t.Fatalf("expected fallback message, got %q", msg)
	}
}

func TestEvaluateCustomCheckRunsLast(t *testing.T) {
	called := false
	rule := &Rule{
		Required: true,
		Check: func(any, Values) error {
			called = true
			return nil
		},
	}
	if msg := Evaluate("", rule, nil); msg != defaultRequiredMessage {
		t.Fatalf("expected required message, got %q", msg)
	}
	if called {
		t.Fatalf("custom check ran despite earlier constraint failing")
	}
}

func TestEvaluateMessageOverrides(t *testing.T) {
	rule := &Rule{
		Required: true,
		Messages: Messages{Required: "email is mandatory"},
	}
	if msg := Evaluate("", rule, nil); msg != "email is mandatory" {
		t.Fatalf("override not applied: %q", msg)
	}
}
