package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeExported(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user", "User"},
		{"user_profile", "UserProfile"},
		{"user-profile", "UserProfile"},
		{"user.profile", "UserProfile"},
		{"API", "API"},
		{"apiClient", "ApiClient"},
		{"2fa", "T2Fa"},
		{"type", "Type_"},
		{"Range", "Range_"},
		{"", "Schema"},
		{"---", "Schema"},
		{"with spaces here", "WithSpacesHere"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeExported(tt.input))
		})
	}
}

func TestSanitizeUnexported(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"User", "user"},
		{"user_profile", "userProfile"},
		{"Type", "type_"},
		{"2fa", "t2Fa"},
		{"", "schema"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeUnexported(tt.input))
		})
	}
}
