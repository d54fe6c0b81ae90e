package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	reEmail  = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reFolder = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Search trims and clamps a catalog search term. Empty means "no filter".
// The clamp never splits a multi-byte rune.
func Search(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 100 {
		cut := 100
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s
}

// Limit parses a result cap; absent, malformed, or non-positive values fall
// back to def.
func Limit(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// Flag is truthy only when the literal value is "1" — "true" is absent.
func Flag(s string) bool { return s == "1" }

// Folder validates an upload folder segment (single path element).
func Folder(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reFolder.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

// Password enforces a simple length window for login checks.
func Password(s string) bool {
	return len(s) >= 8 && len(s) <= 72 // bcrypt input cap
}
