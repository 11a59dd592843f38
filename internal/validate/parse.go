package validate

import (
	"strconv"
	"strings"

	"numprompt/internal/domain"
)

// ParseNumber interprets the leading portion of s as a base-10 integer
// literal and wraps it in an UnsanitizedNumber. The second return is false
// when s has no leading integer, or when the digit run overflows the native
// int range. No side effects; failure is never a panic or an error value.
func ParseNumber(s string) (domain.UnsanitizedNumber, bool) {
	lit := leadingInt(strings.TrimSpace(s))
	if lit == "" {
		return domain.UnsanitizedNumber{}, false
	}
	v, err := strconv.Atoi(lit)
	if err != nil {
		return domain.UnsanitizedNumber{}, false
	}
	return domain.UnsanitizedNumber{Value: v}, true
}

// leadingInt returns the longest prefix of s forming a signed base-10
// integer literal, or "" when s does not start with one.
func leadingInt(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return ""
	}
	return s[:i]
}
