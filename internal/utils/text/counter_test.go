package text_test

import (
	"testing"

	"masthead/internal/utils/text"
)

// TestCountRunes tests the CountRunes function with various character types
func TestCountRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name:     "ASCII text",
			input:    "Tech Today",
			expected: 10,
		},
		{
			name:     "Japanese text",
			input:    "週刊テクノロジー",
			expected: 8,
		},
		{
			name:     "mixed text",
			input:    "hello世界",
			expected: 7,
		},
		{
			name:     "text with emoji",
			input:    "Hello👋",
			expected: 6,
		},
		{
			name:     "empty string",
			input:    "",
			expected: 0,
		},
		{
			name:     "whitespace only",
			input:    " \t\n ",
			expected: 4,
		},
		{
			name:     "punctuation",
			input:    "Health & Wellness",
			expected: 17,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := text.CountRunes(tt.input)

			if result != tt.expected {
				t.Errorf("CountRunes(%q) = %d, expected %d", tt.input, result, tt.expected)
			}
		})
	}
}

// TestCountRunes_MatchesGoBuiltin tests that CountRunes matches Go's built-in rune counting
func TestCountRunes_MatchesGoBuiltin(t *testing.T) {
	tests := []string{
		"The Future of AI",
		"こんにちは",
		"hello世界",
		"",
		"   ",
	}

	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			expected := len([]rune(tt))

			result := text.CountRunes(tt)

			if result != expected {
				t.Errorf("CountRunes(%q) = %d, expected %d (Go built-in)", tt, result, expected)
			}
		})
	}
}
