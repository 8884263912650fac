package caption

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/trendpilot/api/internal/model"
)

// TemplateResult is the output of the deterministic caption builder.
type TemplateResult struct {
	Caption  string
	Hashtags []string
	Keywords []string
}

var tonePrefixes = map[string]string{
	"engaging":     "🔥",
	"playful":      "😄",
	"professional": "💼",
	"bold":         "💥",
}

// Generate builds a caption, hashtag list, and keyword list from the parsed
// request fields without any network access. Output is deterministic for
// identical input (modulo the current month in the filler line), so it serves
// as the guaranteed fallback when every upstream is down or unconfigured.
func Generate(topic string, platform model.Platform, tone, trend string) TemplateResult {
	rules := RulesFor(platform)
	topic = strings.TrimSpace(topic)
	trend = strings.TrimSpace(trend)

	headline := tonePrefix(tone) + " " + capitalize(topic)
	if trend != "" {
		headline += " • " + trend
	}

	now := time.Now()
	body := []string{
		headline,
		fmt.Sprintf("Here’s what’s trending %s %d — let’s talk!", now.Month(), now.Year()),
		rules.CallToAction,
	}
	text := strings.Join(body, rules.Linebreak)

	// Only X is strict enough to need trimming.
	if platform == model.PlatformX {
		if runes := []rune(text); len(runes) > rules.MaxCaption {
			text = string(runes[:rules.MaxCaption-1]) + "…"
		}
	}

	return TemplateResult{
		Caption:  text,
		Hashtags: makeHashtags(topic, trend, platform, rules.HashtagLimit),
		Keywords: extractKeywords(topic, trend),
	}
}

func tonePrefix(tone string) string {
	if p, ok := tonePrefixes[strings.ToLower(tone)]; ok {
		return p
	}
	return "✨"
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	out := make([]rune, len(runes))
	out[0] = unicode.ToUpper(runes[0])
	for i, r := range runes[1:] {
		out[i+1] = unicode.ToLower(r)
	}
	return string(out)
}

// Slugify converts free text into a hashtag-safe token: alphanumeric only,
// lower-cased, "#"-prefixed.
func Slugify(word string) string {
	var sb strings.Builder
	sb.WriteByte('#')
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// makeHashtags seeds tags from topic and trend words of at least 3 characters,
// deduplicates preserving first-seen order, drops denylisted tags, caps at the
// platform limit, and appends a platform tag if room remains.
func makeHashtags(topic, trend string, platform model.Platform, limit int) []string {
	var seeds []string
	for _, piece := range strings.Fields(topic) {
		if len([]rune(piece)) >= 3 {
			seeds = append(seeds, Slugify(piece))
		}
	}
	for _, piece := range strings.Fields(trend) {
		if len([]rune(piece)) >= 3 {
			seeds = append(seeds, Slugify(piece))
		}
	}

	tags := make([]string, 0, limit)
	seen := make(map[string]struct{}, len(seeds))
	for _, t := range seeds {
		if t == "#" {
			continue
		}
		if IsBannedTag(t) {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
		if len(tags) >= limit {
			break
		}
	}

	if len(tags) < limit && model.IsKnownPlatform(platform) {
		platformTag := "#" + string(platform)
		if _, dup := seen[platformTag]; !dup {
			tags = append(tags, platformTag)
		}
	}
	return tags
}

// extractKeywords returns topic and trend, deduplicated in first-seen order,
// capped at 3 entries.
func extractKeywords(topic, trend string) []string {
	var keywords []string
	seen := make(map[string]struct{}, 2)
	for _, kw := range []string{topic, trend} {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
		if len(keywords) >= 3 {
			break
		}
	}
	return keywords
}
