package form

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips all HTML from a string value. Used by the
// WithSanitizedStrings option so values sourced from untrusted input
// cannot smuggle markup into whatever consumes the submitted map.
func sanitizeText(raw string) string {
	return textSanitizer().Sanitize(raw)
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
