package service

import (
	"context"
	"strings"

	"github.com/trendpilot/api/internal/config"
	"github.com/trendpilot/api/internal/model"
	"github.com/trendpilot/api/internal/trends"
)

// TrendsService serves cached trending terms shaped for a platform.
type TrendsService struct {
	cache *trends.Cache
	geo   string
	lang  string
	tz    int
	ttl   int
}

func NewTrendsService(cache *trends.Cache, cfg *config.TrendsConfig) *TrendsService {
	return &TrendsService{
		cache: cache,
		geo:   cfg.Geo,
		lang:  cfg.Lang,
		tz:    cfg.TZ,
		ttl:   cfg.TTL,
	}
}

// Trending returns up to 20 trending terms for the configured locale.
// tiktok and x get hashtag-shaped terms.
func (s *TrendsService) Trending(ctx context.Context, platform string) *model.TrendsResponse {
	p := model.NormalizePlatform(platform)
	terms := s.cache.TrendingTerms(ctx, s.geo, s.lang, s.tz, s.ttl)

	return &model.TrendsResponse{
		Success:  true,
		Platform: string(p),
		Trends:   shapeForPlatform(p, terms),
		Geo:      s.geo,
	}
}

func shapeForPlatform(p model.Platform, terms []string) []string {
	if p != model.PlatformTikTok && p != model.PlatformX {
		return terms
	}
	shaped := make([]string, len(terms))
	for i, t := range terms {
		if strings.HasPrefix(t, "#") {
			shaped[i] = t
			continue
		}
		shaped[i] = "#" + strings.ReplaceAll(t, " ", "")
	}
	return shaped
}
