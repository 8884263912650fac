package model

// ImageGenerateRequest represents the request body for image generation.
// All fields are optional; the prompt builder skips empty sections.
type ImageGenerateRequest struct {
	Topic        string `json:"topic" validate:"omitempty,max=300"`
	Tone         string `json:"tone" validate:"omitempty,max=60"`
	Caption      string `json:"caption" validate:"omitempty,max=3000"`
	Size         string `json:"size" validate:"omitempty,max=20"`
	Subject      string `json:"subject" validate:"omitempty,max=300"`
	Style        string `json:"style" validate:"omitempty,max=300"`
	Background   string `json:"background" validate:"omitempty,max=300"`
	Lighting     string `json:"lighting" validate:"omitempty,max=300"`
	ColorPalette string `json:"color_palette" validate:"omitempty,max=300"`
}

// ImageGenerateResponse carries a base64-encoded PNG. Fallback is true when
// the image came from the local placeholder renderer instead of the upstream
// image service.
type ImageGenerateResponse struct {
	Success     bool   `json:"success"`
	ImageBase64 string `json:"image_base64"`
	Mime        string `json:"mime"`
	Fallback    bool   `json:"fallback,omitempty"`
}
