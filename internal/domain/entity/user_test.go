package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		uid     string
		profile *UserProfile
		want    string
	}{
		{"profile name wins", "abcdefghij", &UserProfile{Name: "Asha"}, "Asha"},
		{"missing profile truncates uid", "abcdefghij", nil, "abcdef..."},
		{"empty name truncates uid", "abcdefghij", &UserProfile{}, "abcdef..."},
		{"short uid", "abc", nil, "abc..."},
		{"empty uid", "", nil, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.uid, tt.profile))
		})
	}
}

func TestRoleOf(t *testing.T) {
	assert.Equal(t, RoleAdmin, RoleOf(&UserProfile{AdminCheck: true}))
	assert.Equal(t, RoleCustomer, RoleOf(&UserProfile{}))
	assert.Equal(t, RoleCustomer, RoleOf(nil))
}
