package caption

import (
	"strings"

	"github.com/trendpilot/api/internal/model"
)

// PromptFields holds the structured fields extracted from a free-form prompt.
type PromptFields struct {
	Topic    string
	Platform string
	Tone     string
	Trend    string
}

// ParsePrompt extracts topic/platform/tone/trend from a line-oriented
// "Key: value" text block. Keys are matched case-insensitively; unrecognized
// lines are ignored; the last occurrence of a repeated key wins. Missing
// fields default independently (platform "instagram", tone "engaging").
func ParsePrompt(prompt string) PromptFields {
	fields := PromptFields{
		Platform: string(model.DefaultPlatform),
		Tone:     model.DefaultTone,
	}

	for _, line := range strings.Split(prompt, "\n") {
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "topic:"):
			fields.Topic = valueAfterColon(line)
		case strings.HasPrefix(lower, "platform:"):
			if v := strings.ToLower(valueAfterColon(line)); v != "" {
				fields.Platform = v
			} else {
				fields.Platform = string(model.DefaultPlatform)
			}
		case strings.HasPrefix(lower, "tone:"):
			if v := strings.ToLower(valueAfterColon(line)); v != "" {
				fields.Tone = v
			} else {
				fields.Tone = model.DefaultTone
			}
		case strings.HasPrefix(lower, "trend:"):
			fields.Trend = valueAfterColon(line)
		}
	}

	return fields
}

func valueAfterColon(line string) string {
	_, after, _ := strings.Cut(line, ":")
	return strings.TrimSpace(after)
}
