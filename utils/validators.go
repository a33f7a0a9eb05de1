package utils

import (
	"regexp"
	"unicode/utf8"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,50}$`)

func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// IsValidContent bounds user-supplied text for posts, comments and messages.
func IsValidContent(content string, maxLen int) bool {
	length := utf8.RuneCountInString(content)
	return length > 0 && length <= maxLen
}
