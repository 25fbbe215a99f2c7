// SPDX-License-Identifier: MIT

package envconfig

import (
	"strings"
	"unicode"
)

// deriveKey maps a Go field name to its environment variable name by
// splitting CamelCase words and joining them with underscores, uppercased:
// NumRetries becomes NUM_RETRIES, APIKey becomes API_KEY, S3Bucket becomes
// S3_BUCKET. Non-alphanumeric runes normalize to underscores.
func deriveKey(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			b.WriteRune('_')
			continue
		}
		if i > 0 && unicode.IsUpper(r) && wordBoundary(runes, i) {
			b.WriteRune('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// wordBoundary reports whether a new word starts at runes[i]. A boundary
// falls after a lowercase letter or digit, and at the last capital of an
// acronym run when a lowercase letter follows.
func wordBoundary(runes []rune, i int) bool {
	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// normalizeKeyPart uppercases a caller-supplied prefix and maps
// non-alphanumeric runes to underscores. Unlike deriveKey it never splits
// words, so an acronym prefix like "B2B" stays whole.
func normalizeKeyPart(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		b.WriteRune('_')
	}
	return b.String()
}

const redactedPlaceholder = "[redacted]"

var sensitiveKeyTokens = []string{"TOKEN", "PASSWORD", "SECRET"}

// isSensitiveKey reports whether a key's value must be kept out of logs and
// error messages.
func isSensitiveKey(key string) bool {
	upper := strings.ToUpper(key)
	for _, token := range sensitiveKeyTokens {
		if strings.Contains(upper, token) {
			return true
		}
	}
	return false
}
