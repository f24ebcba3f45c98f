// Package sanitize strips markup from user-submitted support text.
package sanitize

import (
	"html"

	"canteen/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

type strictSanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a sanitizer that removes every HTML element. Text is stored and
// rendered as plain text, so entities the policy escapes are decoded again.
func NewSanitizer() service.Sanitizer {
	return &strictSanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *strictSanitizer) Sanitize(text string) string {
	return html.UnescapeString(s.policy.Sanitize(text))
}
