package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: " \t\n \r\n ",
			want:  "",
		},
		{
			name:  "collapses spaces",
			input: "a    b",
			want:  "a b",
		},
		{
			name:  "collapses mixed whitespace",
			input: "a\t\tb\n\nc \t d",
			want:  "a b c d",
		},
		{
			name:  "trims ends",
			input: "  hello world  ",
			want:  "hello world",
		},
		{
			name:  "already normalized",
			input: "hello world",
			want:  "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.input))
		})
	}
}

func TestNormalizeText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"a\tb\nc",
		"  multiple   spaces \r\n and lines  ",
		"plain sentence",
	}

	for _, input := range inputs {
		once := NormalizeText(input)
		twice := NormalizeText(once)
		assert.Equal(t, once, twice, "normalize must be idempotent for %q", input)
	}
}

func TestNormalizeText_NoConsecutiveWhitespace(t *testing.T) {
	inputs := []string{
		"a  b\t\tc\n\nd",
		" leading and trailing ",
		"tabs\tand\nnewlines\r\nmixed",
	}

	for _, input := range inputs {
		got := NormalizeText(input)
		assert.NotContains(t, got, "  ")
		assert.NotContains(t, got, "\t")
		assert.NotContains(t, got, "\n")
		assert.Equal(t, strings.TrimSpace(got), got)
	}
}
