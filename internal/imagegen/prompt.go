// Package imagegen builds image-generation prompts and renders the local
// placeholder image used when no image service is configured.
package imagegen

import (
	"strings"
)

const promptSuffix = "Social-media ready, clean composition, strong focal subject, high contrast, no embedded text."

// PromptParams are the optional creative controls for an image prompt.
// Empty fields are omitted from the prompt.
type PromptParams struct {
	Topic        string
	Tone         string
	Caption      string
	Subject      string
	Style        string
	Background   string
	Lighting     string
	ColorPalette string
}

// BuildPrompt assembles a descriptive prompt for the upstream image service.
// When no explicit subject is given the topic stands in for it.
func BuildPrompt(p PromptParams) string {
	var parts []string

	if p.Subject != "" {
		parts = append(parts, "Subject: "+p.Subject+".")
	} else {
		parts = append(parts, "Subject inspired by: "+p.Topic+".")
	}
	if p.Style != "" {
		parts = append(parts, "Style: "+p.Style+".")
	}
	if p.Background != "" {
		parts = append(parts, "Background: "+p.Background+".")
	}
	if p.Lighting != "" {
		parts = append(parts, "Lighting: "+p.Lighting+".")
	}
	if p.ColorPalette != "" {
		parts = append(parts, "Color palette: "+p.ColorPalette+".")
	}
	if p.Tone != "" {
		parts = append(parts, "Brand tone: "+p.Tone+".")
	}
	if p.Caption != "" {
		parts = append(parts, "Caption context: "+p.Caption+".")
	}
	parts = append(parts, promptSuffix)

	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
