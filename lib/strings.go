package lib

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize uppercases the first rune of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// SanitizeString trims whitespace and optionally lowercases s.
func SanitizeString(s string, trim bool, lower bool) string {
	if trim {
		s = strings.TrimSpace(s)
	}
	if lower {
		s = strings.ToLower(s)
	}
	return s
}
