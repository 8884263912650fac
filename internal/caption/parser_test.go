package caption

import "testing"

func TestParsePrompt_AllFields(t *testing.T) {
	prompt := "Topic: eco bags\nPlatform: tiktok\nTone: playful\nTrend: earth day"

	fields := ParsePrompt(prompt)

	if fields.Topic != "eco bags" {
		t.Errorf("expected topic 'eco bags', got %q", fields.Topic)
	}
	if fields.Platform != "tiktok" {
		t.Errorf("expected platform 'tiktok', got %q", fields.Platform)
	}
	if fields.Tone != "playful" {
		t.Errorf("expected tone 'playful', got %q", fields.Tone)
	}
	if fields.Trend != "earth day" {
		t.Errorf("expected trend 'earth day', got %q", fields.Trend)
	}
}

func TestParsePrompt_Defaults(t *testing.T) {
	fields := ParsePrompt("just some text without any recognized lines")

	if fields.Topic != "" {
		t.Errorf("expected empty topic, got %q", fields.Topic)
	}
	if fields.Platform != "instagram" {
		t.Errorf("expected default platform 'instagram', got %q", fields.Platform)
	}
	if fields.Tone != "engaging" {
		t.Errorf("expected default tone 'engaging', got %q", fields.Tone)
	}
	if fields.Trend != "" {
		t.Errorf("expected empty trend, got %q", fields.Trend)
	}
}

func TestParsePrompt_CaseInsensitiveKeys(t *testing.T) {
	fields := ParsePrompt("TOPIC: Coffee\nPLATFORM: X")

	if fields.Topic != "Coffee" {
		t.Errorf("expected topic 'Coffee', got %q", fields.Topic)
	}
	if fields.Platform != "x" {
		t.Errorf("expected platform 'x', got %q", fields.Platform)
	}
}

func TestParsePrompt_LastOccurrenceWins(t *testing.T) {
	fields := ParsePrompt("Topic: first\nTopic: second")

	if fields.Topic != "second" {
		t.Errorf("expected last topic to win, got %q", fields.Topic)
	}
}

func TestParsePrompt_EmptyValuesFallBack(t *testing.T) {
	fields := ParsePrompt("Platform:\nTone:   ")

	if fields.Platform != "instagram" {
		t.Errorf("expected empty platform to default, got %q", fields.Platform)
	}
	if fields.Tone != "engaging" {
		t.Errorf("expected empty tone to default, got %q", fields.Tone)
	}
}

func TestParsePrompt_PlatformAndToneLowered(t *testing.T) {
	fields := ParsePrompt("Platform: TikTok\nTone: Playful")

	if fields.Platform != "tiktok" {
		t.Errorf("expected lower-cased platform, got %q", fields.Platform)
	}
	if fields.Tone != "playful" {
		t.Errorf("expected lower-cased tone, got %q", fields.Tone)
	}
}
