package form

import "testing"

func TestTagRuleEmail(t *testing.T) {
	rule := &Rule{Check: TagRule("email")}

	if msg := Evaluate("nope", rule, nil); msg == "" {
		t.Fatalf("invalid email accepted")
	}
	if msg := Evaluate("a@b.com", rule, nil); msg != "" {
		t.Fatalf("valid email rejected: %q", msg)
	}
}

func TestTagRuleSkipsAbsentValues(t *testing.T) {
	rule := &Rule{Check: TagRule("email")}

	for _, absent := range []any{nil, ""} {
		if msg := Evaluate(absent, rule, nil); msg != "" {
			t.Fatalf("absent value %#v rejected: %q", absent, msg)
		}
	}
}

func TestTagRuleComposesWithRequired(t *testing.T) {
	rule := &Rule{Required: true, Check: TagRule("email")}

	if msg := Evaluate("", rule, nil); msg != defaultRequiredMessage {
		t.Fatalf("expected required message, got %q", msg)
	}
}
