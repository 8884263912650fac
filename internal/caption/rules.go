package caption

import "github.com/trendpilot/api/internal/model"

// Rules holds per-platform caption and hashtag guidance.
type Rules struct {
	MaxCaption   int
	HashtagLimit int
	Linebreak    string
	CallToAction string
}

var platformRules = map[model.Platform]Rules{
	model.PlatformInstagram: {MaxCaption: 2200, HashtagLimit: 8, Linebreak: "\n\n", CallToAction: "Double-tap if you agree ❤️"},
	model.PlatformTikTok:    {MaxCaption: 2200, HashtagLimit: 6, Linebreak: "\n", CallToAction: "Follow for more 🔥"},
	model.PlatformFacebook:  {MaxCaption: 63206, HashtagLimit: 3, Linebreak: "\n\n", CallToAction: "Share your thoughts below 👇"},
	model.PlatformX:         {MaxCaption: 260, HashtagLimit: 2, Linebreak: "  ", CallToAction: "RT if you agree"},
}

// RulesFor returns the rule set for a platform, falling back to instagram's
// rules for unrecognized platforms.
func RulesFor(p model.Platform) Rules {
	if r, ok := platformRules[p]; ok {
		return r
	}
	return platformRules[model.PlatformInstagram]
}

// bannedTags are generic or spam hashtags that are never emitted.
var bannedTags = map[string]struct{}{
	"#followforfollow": {},
	"#likeforlike":     {},
	"#instagood":       {},
	"#photooftheday":   {},
	"#love":            {},
	"#cute":            {},
	"#beautiful":       {},
	"#happy":           {},
	"#fashion":         {},
	"#art":             {},
	"#style":           {},
	"#picoftheday":     {},
}

// IsBannedTag reports whether tag is on the hashtag denylist.
func IsBannedTag(tag string) bool {
	_, ok := bannedTags[tag]
	return ok
}
