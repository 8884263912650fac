package model

import "strings"

// Platform identifies a target social network
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformFacebook  Platform = "facebook"
	PlatformX         Platform = "x"
)

var ValidPlatforms = []Platform{
	PlatformInstagram, PlatformTikTok, PlatformFacebook, PlatformX,
}

// DefaultPlatform is used whenever a request omits the platform field.
const DefaultPlatform = PlatformInstagram

// DefaultTone is used whenever a request omits the tone field.
const DefaultTone = "engaging"

// NormalizePlatform lower-cases and trims a raw platform value, substituting
// the default for an empty one. Unknown platforms are passed through as-is;
// the caption rules table falls back to instagram's rules for them.
func NormalizePlatform(raw string) Platform {
	p := strings.ToLower(strings.TrimSpace(raw))
	if p == "" {
		return DefaultPlatform
	}
	return Platform(p)
}

// NormalizeTone lower-cases and trims a raw tone value, substituting the
// default for an empty one.
func NormalizeTone(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	if t == "" {
		return DefaultTone
	}
	return t
}

// IsKnownPlatform reports whether p has its own rule set.
func IsKnownPlatform(p Platform) bool {
	for _, v := range ValidPlatforms {
		if v == p {
			return true
		}
	}
	return false
}
