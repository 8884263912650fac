package caption

import (
	"strings"
	"testing"

	"github.com/trendpilot/api/internal/model"
)

func TestGenerate_CaptionNonEmptyAndTrimmed(t *testing.T) {
	topics := []string{"eco bags", "coffee", "", "  spaced topic  "}
	for _, topic := range topics {
		res := Generate(topic, model.PlatformInstagram, "engaging", "")
		if res.Caption == "" {
			t.Errorf("topic %q: caption is empty", topic)
		}
		if res.Caption != strings.TrimSpace(res.Caption) {
			t.Errorf("topic %q: caption has surrounding whitespace: %q", topic, res.Caption)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate("eco bags", model.PlatformTikTok, "playful", "earth day")
	b := Generate("eco bags", model.PlatformTikTok, "playful", "earth day")

	if a.Caption != b.Caption {
		t.Errorf("captions differ:\n%q\n%q", a.Caption, b.Caption)
	}
	if strings.Join(a.Hashtags, " ") != strings.Join(b.Hashtags, " ") {
		t.Errorf("hashtags differ: %v vs %v", a.Hashtags, b.Hashtags)
	}
	if strings.Join(a.Keywords, " ") != strings.Join(b.Keywords, " ") {
		t.Errorf("keywords differ: %v vs %v", a.Keywords, b.Keywords)
	}
}

func TestGenerate_HashtagsNoBannedNoDuplicates(t *testing.T) {
	res := Generate("love happy art style cute fashion", model.PlatformInstagram, "engaging", "beautiful picoftheday")

	seen := make(map[string]bool)
	for _, tag := range res.Hashtags {
		if IsBannedTag(tag) {
			t.Errorf("banned tag emitted: %s", tag)
		}
		if seen[tag] {
			t.Errorf("duplicate tag emitted: %s", tag)
		}
		seen[tag] = true
	}
}

func TestGenerate_TikTokScenario(t *testing.T) {
	res := Generate("eco bags", model.PlatformTikTok, "playful", "earth day")

	if !strings.Contains(res.Caption, "Eco bags") {
		t.Errorf("expected caption to contain 'Eco bags', got %q", res.Caption)
	}

	allowed := map[string]bool{
		"#eco": true, "#bags": true, "#earth": true, "#day": true, "#tiktok": true,
	}
	if len(res.Hashtags) > 6 {
		t.Errorf("expected at most 6 hashtags for tiktok, got %d", len(res.Hashtags))
	}
	for _, tag := range res.Hashtags {
		if !allowed[tag] {
			t.Errorf("unexpected hashtag %s", tag)
		}
	}
}

func TestGenerate_PlatformTagAppendedWhenRoom(t *testing.T) {
	res := Generate("coffee", model.PlatformInstagram, "engaging", "")

	found := false
	for _, tag := range res.Hashtags {
		if tag == "#instagram" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected #instagram to be appended, got %v", res.Hashtags)
	}
}

func TestGenerate_PlatformTagNotDuplicated(t *testing.T) {
	res := Generate("tiktok tips", model.PlatformTikTok, "engaging", "")

	count := 0
	for _, tag := range res.Hashtags {
		if tag == "#tiktok" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected #tiktok exactly once, got %d in %v", count, res.Hashtags)
	}
}

func TestGenerate_UnknownPlatformFallsBackToInstagramRules(t *testing.T) {
	res := Generate("coffee", model.Platform("linkedin"), "engaging", "")

	if !strings.Contains(res.Caption, RulesFor(model.PlatformInstagram).CallToAction) {
		t.Errorf("expected instagram CTA for unknown platform, got %q", res.Caption)
	}
	// Unknown platforms must not get a platform hashtag
	for _, tag := range res.Hashtags {
		if tag == "#linkedin" {
			t.Errorf("unexpected platform tag for unknown platform: %v", res.Hashtags)
		}
	}
}

func TestGenerate_XCaptionTruncated(t *testing.T) {
	longTopic := strings.Repeat("very long topic words ", 20)
	res := Generate(longTopic, model.PlatformX, "bold", "")

	max := RulesFor(model.PlatformX).MaxCaption
	if n := len([]rune(res.Caption)); n > max {
		t.Errorf("expected caption within %d chars for x, got %d", max, n)
	}
	if !strings.HasSuffix(res.Caption, "…") {
		t.Errorf("expected truncated caption to end with ellipsis, got %q", res.Caption)
	}
}

func TestGenerate_TrendInHeadline(t *testing.T) {
	res := Generate("eco bags", model.PlatformInstagram, "engaging", "earth day")

	if !strings.Contains(res.Caption, "• earth day") {
		t.Errorf("expected trend suffix in headline, got %q", res.Caption)
	}
}

func TestGenerate_Keywords(t *testing.T) {
	res := Generate("eco bags", model.PlatformInstagram, "engaging", "earth day")

	if len(res.Keywords) != 2 {
		t.Fatalf("expected 2 keywords, got %v", res.Keywords)
	}
	if res.Keywords[0] != "eco bags" || res.Keywords[1] != "earth day" {
		t.Errorf("expected first-seen order [eco bags earth day], got %v", res.Keywords)
	}

	// Duplicate trend collapses
	res = Generate("eco bags", model.PlatformInstagram, "engaging", "eco bags")
	if len(res.Keywords) != 1 {
		t.Errorf("expected duplicates removed, got %v", res.Keywords)
	}
}

func TestGenerate_ShortWordsSkippedInHashtags(t *testing.T) {
	res := Generate("go to a gym", model.PlatformInstagram, "engaging", "")

	for _, tag := range res.Hashtags {
		if tag == "#go" || tag == "#to" || tag == "#a" {
			t.Errorf("short word slipped into hashtags: %v", res.Hashtags)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Earth":    "#earth",
		"day!":     "#day",
		"Café-Bar": "#cafébar",
		"100%":     "#100",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
