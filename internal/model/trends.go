package model

// TrendsResponse represents the response for the trending-terms lookup.
// Trends holds up to 20 terms, shaped per platform (tiktok and x get
// hashtag-style terms).
type TrendsResponse struct {
	Success  bool     `json:"success"`
	Platform string   `json:"platform"`
	Trends   []string `json:"trends"`
	Geo      string   `json:"geo"`
}
