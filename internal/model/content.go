package model

// ContentGenerateRequest represents the request body for content generation.
// Fields may be supplied directly or via Prompt, a line-oriented "Key: value"
// block that fills any field left empty.
type ContentGenerateRequest struct {
	Prompt    string `json:"prompt" validate:"omitempty,max=2000"`
	Topic     string `json:"topic" validate:"required,max=300"`
	Trend     string `json:"trend" validate:"omitempty,max=300"`
	Platform  string `json:"platform" validate:"omitempty,max=40"`
	Tone      string `json:"tone" validate:"omitempty,max=60"`
	SkipAsset bool   `json:"skip_asset"`
}

// RecommendedAsset is the best catalog match for a generated caption.
type RecommendedAsset struct {
	Filename string   `json:"filename"`
	Tags     []string `json:"tags"`
	Score    float64  `json:"score"`
}

// ContentGenerateResponse represents the response for content generation.
// Caption is always non-empty; hashtags and keywords come from the local
// template engine regardless of which upstream produced the caption.
type ContentGenerateResponse struct {
	Success          bool              `json:"success"`
	Caption          string            `json:"caption"`
	Hashtags         string            `json:"hashtags"`
	Keywords         []string          `json:"keywords"`
	RecommendedAsset *RecommendedAsset `json:"recommended_asset"`
}
