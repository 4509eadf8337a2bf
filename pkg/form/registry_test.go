package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryRegisterIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	reg.Register("email", &Rule{Required: true})
	reg.SetValue("email", "a@b.com")
	reg.Touch("email")

	replacement := &Rule{}
	reg.Register("email", replacement)

	if value, _ := reg.Value("email"); value != "a@b.com" {
		t.Fatalf("re-registration reset value: %#v", value)
	}
	if !reg.Touched("email") {
		t.Fatalf("re-registration reset touched")
	}
	if reg.Rule("email") != replacement {
		t.Fatalf("re-registration did not swap rule")
	}
	if got := len(reg.Names()); got != 1 {
		t.Fatalf("expected a single entry, got %d", got)
	}
}

func TestRegistryValueRoundTrip(t *testing.T) {
	reg := NewRegistry()
	for name, value := range map[string]any{
		"str":   "héllo",
		"int":   42,
		"zero":  0,
		"flag":  true,
		"float": 3.14,
	} {
		reg.Register(name, nil)
		reg.SetValue(name, value)
		got, ok := reg.Value(name)
		if !ok {
			t.Fatalf("field %q missing after set", name)
		}
		if got != value {
			t.Fatalf("field %q: got %#v want %#v", name, got, value)
		}
	}
}

func TestRegistryUnregisteredAccessIsNoOp(t *testing.T) {
	reg := NewRegistry()

	reg.SetValue("ghost", "boo")
	reg.SetError("ghost", "spooky")
	reg.Touch("ghost")
	reg.ResetField("ghost")

	if value, ok := reg.Value("ghost"); ok || value != nil {
		t.Fatalf("unregistered read returned %#v, %v", value, ok)
	}
	if msg := reg.Error("ghost"); msg != "" {
		t.Fatalf("unregistered error returned %q", msg)
	}
	if reg.Has("ghost") {
		t.Fatalf("no-op access created an entry")
	}
}

func TestRegistrySetErrorLeavesInteractionState(t *testing.T) {
	reg := NewRegistry()
	reg.Register("username", nil)

	reg.SetError("username", "already taken")

	state, ok := reg.FieldState("username")
	if !ok {
		t.Fatalf("field state missing")
	}
	if state.Error != "already taken" {
		t.Fatalf("error not stored: %q", state.Error)
	}
	if state.Touched || state.Dirty {
		t.Fatalf("SetError mutated interaction state: %+v", state)
	}

	reg.SetError("username", "")
	if msg := reg.Error("username"); msg != "" {
		t.Fatalf("error not cleared: %q", msg)
	}
}

func TestRegistryDirtyTracksInitialValue(t *testing.T) {
	reg := NewRegistry()
	reg.Register("title", nil)
	reg.SetInitial("title", "draft")

	if reg.Dirty() {
		t.Fatalf("pristine registry reported dirty")
	}

	reg.SetValue("title", "final")
	if !reg.Dirty() {
		t.Fatalf("edited field not reported dirty")
	}

	reg.SetValue("title", "draft")
	if reg.Dirty() {
		t.Fatalf("value restored to baseline still dirty")
	}
}

func TestRegistryResetRestoresInitialState(t *testing.T) {
	reg := NewRegistry()
	reg.Register("email", &Rule{Required: true})
	reg.SetInitial("email", "seed@example.com")
	reg.SetValue("email", "other@example.com")
	reg.Touch("email")
	reg.SetError("email", "nope")

	reg.Reset()

	state, _ := reg.FieldState("email")
	want := FieldState{Value: "seed@example.com"}
	if diff := cmp.Diff(want, state); diff != "" {
		t.Fatalf("reset state mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryValuesSnapshot(t *testing.T) {
	reg := NewRegistry()
	reg.Register("a", nil)
	reg.Register("b", nil)
	reg.SetValue("a", 1)
	reg.SetValue("b", "two")

	got := reg.Values()
	want := Values{"a": 1, "b": "two"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	// Snapshot, not a live view.
	got["a"] = 99
	if value, _ := reg.Value("a"); value != 1 {
		t.Fatalf("snapshot mutation leaked into registry")
	}
}
