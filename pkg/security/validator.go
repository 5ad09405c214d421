package security

import (
	"regexp"
	"strings"
	"unicode"
)

// emailPattern accepts local@domain.tld where no part contains whitespace or
// another '@'. Whitespace is the full Unicode set (Z categories, \v and the
// BOM), not just RE2's ASCII \s. It is deliberately looser than RFC 5322.
var emailPattern = regexp.MustCompile(
	`^[^\s\x0B\p{Z}\x{FEFF}@]+@[^\s\x0B\p{Z}\x{FEFF}@]+\.[^\s\x0B\p{Z}\x{FEFF}@]+$`,
)

// htmlReplacer escapes the characters that can open a tag or break out of an
// attribute. '&' is left alone so entities produced here are not re-escaped.
var htmlReplacer = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// IsValidEmail reports whether email matches the simple local@domain.tld pattern.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsSpace reports whether r is whitespace or a line terminator: ASCII
// \t \n \v \f \r and space, any Unicode separator, and U+FEFF.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Z, r)
}

// TrimSpace removes leading and trailing characters for which IsSpace is true.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// SanitizeHTML trims surrounding whitespace and escapes HTML-significant characters.
func SanitizeHTML(s string) string {
	return htmlReplacer.Replace(TrimSpace(s))
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(TrimSpace(email))
}
