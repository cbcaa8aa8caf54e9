package profile

// Avatar is an entry in the fixed avatar set offered during onboarding.
type Avatar struct {
	Key  string
	Icon string
}

// avatars is the static avatar set. Profile.AvatarKey must reference one of
// these at creation time.
var avatars = []Avatar{
	{Key: "avatar1", Icon: "🐱"},
	{Key: "avatar2", Icon: "🐶"},
	{Key: "avatar3", Icon: "🐰"},
	{Key: "avatar4", Icon: "🦊"},
	{Key: "avatar5", Icon: "🐼"},
}

// Avatars returns the avatar set in display order.
func Avatars() []Avatar {
	out := make([]Avatar, len(avatars))
	copy(out, avatars)
	return out
}

// ValidAvatar reports whether key references an existing avatar.
func ValidAvatar(key string) bool {
	for _, a := range avatars {
		if a.Key == key {
			return true
		}
	}
	return false
}

// AvatarIcon returns the display icon for key, or a placeholder for unknown
// keys (a malformed-but-parseable profile must still render).
func AvatarIcon(key string) string {
	for _, a := range avatars {
		if a.Key == key {
			return a.Icon
		}
	}
	return "☺"
}
