package helper

import "regexp"

// maxIdentifierLen is the Postgres limit; MySQL allows 64 and SQLite more.
const maxIdentifierLen = 63

var identifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// IsValidIdentifier reports whether s can name a schema or table as is.
func IsValidIdentifier(s string) bool {
	return len(s) <= maxIdentifierLen && identifierRegex.MatchString(s)
}

// ValidIdentifiers reports whether every non-empty name is a valid
// identifier. Empty names stand for a default and are accepted.
func ValidIdentifiers(names ...string) bool {
	for _, n := range names {
		if n != "" && !IsValidIdentifier(n) {
			return false
		}
	}
	return true
}
