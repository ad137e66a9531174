package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"users", true},
		{"_private2", true},
		{"Users_2024", true},
		{"", false},
		{"2users", false},
		{"us-ers", false},
		{"users;drop", false},
		{`"users"`, false},
		{strings.Repeat("a", 63), true},
		{strings.Repeat("a", 64), false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, IsValidIdentifier(tc.in), tc.in)
	}
}

func TestValidIdentifiers(t *testing.T) {
	assert.True(t, ValidIdentifiers("public", "users"))
	assert.True(t, ValidIdentifiers("", "users"))
	assert.False(t, ValidIdentifiers("public", "us ers"))
}
