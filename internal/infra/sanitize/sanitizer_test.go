package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizer_Sanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "My order is late", "My order is late"},
		{"script removed", `Hi<script>alert("x")</script> there`, "Hi there"},
		{"tags stripped", "<b>cold</b> <a href=\"http://x\">food</a>", "cold food"},
		{"ampersand kept", "Fish & chips", "Fish & chips"},
		{"unicode kept", "चाय ठंडी थी", "चाय ठंडी थी"},
		{"empty", "", ""},
	}

	sanitizer := NewSanitizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizer.Sanitize(tt.in))
		})
	}
}
