package utils

import (
	"strings"

	"github.com/google/uuid"
)

func GenerateUUID() string {
	return uuid.New().String()
}

func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}

// DefaultAvatarURL derives the avatar of a newly registered user from its
// username.
func DefaultAvatarURL(username string) string {
	name := strings.Join(strings.Split(username, " "), "+")
	return "https://ui-avatars.com/api/?name=" + name + "&background=random"
}
