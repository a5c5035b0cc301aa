package services

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeText collapses every run of whitespace (spaces, tabs, newlines)
// into a single space and trims the ends. Idempotent: normalizing twice
// equals normalizing once.
func NormalizeText(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
