package utils

import (
	"net/url"
	"strings"
)

// InitialsAvatarURL builds a placeholder avatar image URL rendered from the
// initials of the given username, matching the avatar every user gets at
// sign-up before uploading a picture of their own.
func InitialsAvatarURL(endpoint, username string) string {
	initials := Initials(username)
	if initials == "" {
		initials = "?"
	}

	q := url.Values{}
	q.Set("name", initials)
	q.Set("size", "256")

	return strings.TrimRight(endpoint, "/") + "/?" + q.Encode()
}

// Initials returns the first letter of up to the first two words of name,
// upper-cased.
func Initials(name string) string {
	var b strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 2 {
			break
		}
		r := []rune(word)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
