package domain

import "strings"

// Companion is who the traveller is with.
type Companion string

const (
	CompanionFamily  Companion = "family"
	CompanionFriends Companion = "friends"
	CompanionSolo    Companion = "solo"
)

func ParseCompanion(s string) (Companion, bool) {
	switch Companion(strings.ToLower(strings.TrimSpace(s))) {
	case CompanionFamily:
		return CompanionFamily, true
	case CompanionFriends:
		return CompanionFriends, true
	case CompanionSolo:
		return CompanionSolo, true
	}
	return "", false
}
