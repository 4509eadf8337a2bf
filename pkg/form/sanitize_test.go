package form

import "testing"

func TestWithSanitizedStringsStripsMarkup(t *testing.T) {
	c := New(WithSanitizedStrings())
	c.Register("bio", nil)

	c.HandleChange("bio", `hello <script>alert("x")</script>world`)
	if got := c.Value("bio"); got != "hello world" {
		t.Fatalf("markup survived sanitization: %#v", got)
	}

	// Non-string values pass through untouched.
	c.Register("age", nil)
	c.HandleChange("age", 41)
	if got := c.Value("age"); got != 41 {
		t.Fatalf("non-string mangled: %#v", got)
	}
}

func TestSanitizationDisabledByDefault(t *testing.T) {
	c := New()
	c.Register("bio", nil)

	raw := "5 < 6 && 7 > 3"
	c.HandleChange("bio", raw)
	if got := c.Value("bio"); got != raw {
		t.Fatalf("default controller altered value: %#v", got)
	}
}
