package domain

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

const MaxTitleLen = 100

// ValidTitle: required, trimmed, at most 100 characters.
func ValidTitle(s string) bool {
	t := strings.TrimSpace(s)
	return t != "" && len(t) <= MaxTitleLen
}
