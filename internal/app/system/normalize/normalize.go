// Package normalize provides canonical forms for user-supplied identity
// fields. Emails are compared lowercased; names keep their case but lose
// surrounding whitespace.
package normalize

import "strings"

// Email trims surrounding whitespace and lowercases the address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace. Case is preserved.
func Name(s string) string {
	return strings.TrimSpace(s)
}
