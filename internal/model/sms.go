package model

import "strings"

// SMS is the outbound message handed to a provider.
type SMS struct {
	To   string `json:"to"`
	From string `json:"from"`
	Body string `json:"body"`
}

// Blank reports whether s has no non-whitespace characters.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
