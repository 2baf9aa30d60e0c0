package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardinalconseils/contact-relay/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		opts     []slug.Option
		expected string
	}{
		{
			name:     "simple text",
			input:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "with punctuation",
			input:    "Acme, Inc.!",
			expected: "acme-inc",
		},
		{
			name:     "multiple spaces collapse",
			input:    "Too    Many     Spaces",
			expected: "too-many-spaces",
		},
		{
			name:     "leading and trailing spaces",
			input:    "  Trim Me  ",
			expected: "trim-me",
		},
		{
			name:     "diacritics folded",
			input:    "Café & Restaurant Éclair",
			expected: "cafe-restaurant-eclair",
		},
		{
			name:     "french company name",
			input:    "Conseils Généraux du Québec",
			expected: "conseils-generaux-du-quebec",
		},
		{
			name:     "numbers preserved",
			input:    "Studio 54",
			expected: "studio-54",
		},
		{
			name:     "custom separator",
			input:    "Product Name",
			opts:     []slug.Option{slug.Separator('_')},
			expected: "product_name",
		},
		{
			name:     "max length truncates on rune boundary",
			input:    "very long company name",
			opts:     []slug.Option{slug.MaxLength(9)},
			expected: "very-long",
		},
		{
			name:     "max length trims dangling separator",
			input:    "very long company name",
			opts:     []slug.Option{slug.MaxLength(10)},
			expected: "very-long",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "only punctuation",
			input:    "!!!",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slug.Make(tt.input, tt.opts...))
		})
	}
}
