// Package assets fuzzy-matches generated captions against a fixed catalog of
// media assets so the frontend can suggest a ready-made visual.
package assets

import (
	"math"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Asset is a catalog entry: a media file plus the tags describing it.
type Asset struct {
	Filename string
	Tags     []string
}

// Match is a scored catalog hit. Score is 0-100, rounded to one decimal.
type Match struct {
	Filename string
	Tags     []string
	Score    float64
}

// Catalog is the built-in asset library.
var Catalog = []Asset{
	{Filename: "eco_water_bottle.jpg", Tags: []string{"eco", "sustainable", "water", "bottle"}},
	{Filename: "vegan_pasta_recipe.mp4", Tags: []string{"vegan", "pasta", "recipe", "food", "healthy"}},
	{Filename: "sunset_meditation.jpg", Tags: []string{"sunset", "meditation", "ocean", "wellness"}},
	{Filename: "fitness_motivation.mp4", Tags: []string{"fitness", "workout", "exercise", "motivation"}},
}

// Matcher scores caption keywords against a catalog using local-alignment
// string similarity, so partial matches ("fitness" vs "fitness_motivation.mp4")
// still score high.
type Matcher struct {
	catalog []Asset
	metric  *metrics.SmithWatermanGotoh
}

func NewMatcher(catalog []Asset) *Matcher {
	return &Matcher{
		catalog: catalog,
		metric:  metrics.NewSmithWatermanGotoh(),
	}
}

// Match returns the best-scoring asset for the caption, or nil when the
// catalog is empty or the caption yields no usable keywords. Ties go to the
// asset listed first in the catalog.
func (m *Matcher) Match(caption string) *Match {
	keywords := captionKeywords(caption)
	if len(keywords) == 0 || len(m.catalog) == 0 {
		return nil
	}

	var best *Match
	for i := range m.catalog {
		asset := &m.catalog[i]
		score := m.scoreAsset(asset, keywords)
		if best == nil || score > best.Score {
			best = &Match{
				Filename: asset.Filename,
				Tags:     asset.Tags,
				Score:    score,
			}
		}
	}
	best.Score = math.Round(best.Score*10) / 10
	return best
}

// scoreAsset takes the maximum pairwise similarity between any keyword and
// any of the asset's tags or its filename.
func (m *Matcher) scoreAsset(asset *Asset, keywords []string) float64 {
	fields := make([]string, 0, len(asset.Tags)+1)
	for _, t := range asset.Tags {
		fields = append(fields, strings.ToLower(t))
	}
	fields = append(fields, strings.ToLower(asset.Filename))

	best := 0.0
	for _, kw := range keywords {
		for _, f := range fields {
			if s := strutil.Similarity(kw, f, m.metric) * 100; s > best {
				best = s
			}
		}
	}
	return best
}

// captionKeywords splits the caption into lower-cased words longer than two
// characters, stripped of leading and trailing punctuation.
func captionKeywords(caption string) []string {
	var keywords []string
	for _, w := range strings.Fields(caption) {
		if len([]rune(w)) <= 2 {
			continue
		}
		w = strings.ToLower(strings.Trim(w, "#.,!?:;"))
		if w != "" {
			keywords = append(keywords, w)
		}
	}
	return keywords
}
