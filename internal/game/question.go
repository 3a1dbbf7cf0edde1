package game

import "strings"

// IsQuestion reports whether a group message counts as a game question:
// non-empty after trimming, ends with a question mark, and is not a
// command. Whether the chat actually has an active session is the
// router's side of the check.
func IsQuestion(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, "/") {
		return false
	}
	return strings.HasSuffix(trimmed, "?")
}
