package utils

import (
	"regexp"
	"strings"
)

var codeFencePattern = regexp.MustCompile("(?i)\n?```(?:json)?\n?")

// StripCodeFence removes markdown code fences (``` or ```json) anywhere in s and trims whitespace
func StripCodeFence(s string) string {
	return strings.TrimSpace(codeFencePattern.ReplaceAllString(s, ""))
}

// Truncate shortens s to at most n runes
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
