package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	cases := map[string]bool{
		"jane@example.com":   true,
		" jane@example.com ": true,
		"jane.example.com":   false,
		"jane@example":       false,
		"ja ne@example.com":  false,
		"":                   false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsEmail(in), in)
	}
}

func TestIsPhone(t *testing.T) {
	cases := map[string]bool{
		"01712-345678":     true,
		"(017) 1234 5678":  true,
		"017.1234.5678":    true,
		"+8801712345678":   false,
		"x01712345678":     false,
		"12345":            false,
		"0171234567890123": false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsPhone(in), in)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.COM "))
}
