package utils

import (
	"net/url"
)

// InitialsAvatarURL builds the default avatar for a new account the way the
// hosted avatar service renders initials from a display name.
func InitialsAvatarURL(name string) string {
	if name == "" {
		name = "Guest"
	}
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name)
}
