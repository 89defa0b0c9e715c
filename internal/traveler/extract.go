// Package traveler resolves traveler profiles from free-text chat input and
// the tabular preference dataset.
package traveler

import (
	"regexp"
	"strings"
)

var (
	introPattern     = regexp.MustCompile(`(?i)(?:I'm|I\s+am|my\s+name\s+is)\s+([a-zA-Z]+)`)
	referencePattern = regexp.MustCompile(`(?i)\bfor\s+([a-zA-Z]+)`)
)

// ExtractName scans a chat message for an introduced or referenced traveler
// name ("I'm Jane", "my name is Jane", "for Jane") and returns it capitalized.
// The introduction pattern wins when both would match. Returns "" when no name
// is present, which is a normal case, not an error.
func ExtractName(message string) string {
	if m := introPattern.FindStringSubmatch(message); m != nil {
		return capitalize(m[1])
	}
	if m := referencePattern.FindStringSubmatch(message); m != nil {
		return capitalize(m[1])
	}
	return ""
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
