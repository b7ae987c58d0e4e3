package utils

import (
	"fmt"
	"strings"
)

// NormalizeWord trims surrounding whitespace and lower-cases a word.
func NormalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsAlphaWord reports whether a string is non-empty ASCII letters only.
// Dictionary words and guesses are expected to pass this.
func IsAlphaWord(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	str := fmt.Sprintf("%d", n)
	result := ""
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(char)
	}
	return result
}
