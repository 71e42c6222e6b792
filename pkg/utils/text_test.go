package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugifyCases = []struct {
	name     string
	input    string
	expected string
}{
	{"punctuation and underscores", "Hello, World!  Foo_Bar", "hello-world-foo-bar"},
	{"surrounding spaces", "  Leading and trailing  ", "leading-and-trailing"},
	{"accents dropped", "Café Crème", "caf-crme"},
	{"no-break space", "a\u00a0b", "a-b"},
	{"unicode spaces", "Red\u2003Ankara\u3000Gown", "red-ankara-gown"},
	{"hyphen runs", "---Hello---World---", "hello-world"},
	{"mixed separators", "Ankara Print_Dress - Size 12", "ankara-print-dress-size-12"},
	{"currency symbol", "₦5,000 Deal!", "5000-deal"},
	{"already a slug", "red-ankara-gown", "red-ankara-gown"},
	{"only symbols", "!!!", ""},
	{"empty", "", ""},
}

func TestSlugify(t *testing.T) {
	for _, tt := range slugifyCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	for _, tt := range slugifyCases {
		t.Run(tt.name, func(t *testing.T) {
			once := Slugify(tt.input)
			assert.Equal(t, once, Slugify(once))
		})
	}
}

func TestSlugifyASCII(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"accents folded", "Café Crème", "cafe-creme"},
		{"yoruba tone marks", "Ọjà Àṣà", "oja-asa"},
		{"plain ascii", "Hello, World!", "hello-world"},
		{"no-break space", "Café\u00a0Noir", "cafe-noir"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SlugifyASCII(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		length   int
		expected string
	}{
		{"truncate with ellipsis", "abcdefgh", 5, "abcde..."},
		{"no truncation needed", "abc", 5, "abc"},
		{"exact length", "abcde", 5, "abcde"},
		{"trailing space trimmed", "hello world", 6, "hello..."},
		{"counts runes", "naïve café", 5, "naïve..."},
		{"zero length", "abc", 0, "..."},
		{"negative length", "abc", -1, "..."},
		{"empty", "", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.length))
		})
	}
}
