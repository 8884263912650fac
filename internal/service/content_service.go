package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/trendpilot/api/internal/assets"
	"github.com/trendpilot/api/internal/caption"
	"github.com/trendpilot/api/internal/client"
	"github.com/trendpilot/api/internal/model"
)

const captionSystemPrompt = "Act as if you're the best social copywriter in the world. " +
	"Write one concise, high-converting social caption. Keep under 220 words."

// ContentService assembles captions, hashtags, and keywords. The caption is
// taken from the first upstream that answers (chat completion, then the
// hosted caption Space), falling back to the local template engine; hashtags
// and keywords always come from the template engine. The pipeline never
// fails: any upstream error degrades to local content.
type ContentService struct {
	openai          *client.OpenAIClient
	captionSpace    *client.SpaceClient
	paraphraseSpace *client.SpaceClient
	matcher         *assets.Matcher
}

// NewContentService creates a content service. Any client may be nil or
// unconfigured; the corresponding stage is then skipped.
func NewContentService(openai *client.OpenAIClient, captionSpace, paraphraseSpace *client.SpaceClient, matcher *assets.Matcher) *ContentService {
	return &ContentService{
		openai:          openai,
		captionSpace:    captionSpace,
		paraphraseSpace: paraphraseSpace,
		matcher:         matcher,
	}
}

// Generate runs the full pipeline for a validated request and always returns
// a well-formed response with a non-empty caption.
func (s *ContentService) Generate(ctx context.Context, req *model.ContentGenerateRequest) *model.ContentGenerateResponse {
	topic := strings.TrimSpace(req.Topic)
	trend := strings.TrimSpace(req.Trend)
	platform := model.NormalizePlatform(req.Platform)
	tone := model.NormalizeTone(req.Tone)

	tpl := caption.Generate(topic, platform, tone, trend)

	text := s.upstreamCaption(ctx, topic, platform, tone, trend)
	if text == "" {
		text = tpl.Caption
	}
	if better := s.paraphrase(ctx, text, platform, tone); better != "" {
		text = better
	}
	text = strings.TrimSpace(text)
	if text == "" {
		text = degradedCaption(topic, tone)
	}

	resp := &model.ContentGenerateResponse{
		Success:  true,
		Caption:  text,
		Hashtags: strings.Join(tpl.Hashtags, " "),
		Keywords: tpl.Keywords,
	}

	if !req.SkipAsset && s.matcher != nil {
		if m := s.matcher.Match(text); m != nil {
			resp.RecommendedAsset = &model.RecommendedAsset{
				Filename: m.Filename,
				Tags:     m.Tags,
				Score:    m.Score,
			}
		}
	}

	return resp
}

// upstreamCaption tries each configured caption upstream exactly once and
// returns the first non-empty result, or "" when none answered.
func (s *ContentService) upstreamCaption(ctx context.Context, topic string, platform model.Platform, tone, trend string) string {
	if s.openai != nil && s.openai.IsConfigured() {
		user := fmt.Sprintf("Platform: %s\nTone: %s\nTopic: %s\nTrend: %s\n"+
			"Constraints: No hashtags in the caption text. Friendly CTA at the end.",
			platform, tone, topic, trend)

		text, err := s.openai.ChatCompletion(ctx, captionSystemPrompt, user)
		if err != nil {
			log.Warn().Err(err).Msg("chat completion upstream failed")
		} else if text = strings.TrimSpace(text); text != "" {
			return text
		}
	}

	if s.captionSpace != nil && s.captionSpace.IsConfigured() {
		text, err := s.captionSpace.Predict(ctx, topic, string(platform), tone, trend)
		if err != nil {
			log.Warn().Err(err).Msg("caption space upstream failed")
		} else if text != "" {
			return text
		}
	}

	return ""
}

// paraphrase asks the paraphraser Space to improve the caption. Returns ""
// when the Space is unconfigured or failed; the caller keeps the original.
func (s *ContentService) paraphrase(ctx context.Context, text string, platform model.Platform, tone string) string {
	if s.paraphraseSpace == nil || !s.paraphraseSpace.IsConfigured() {
		return ""
	}
	better, err := s.paraphraseSpace.Predict(ctx, text, string(platform), tone, "")
	if err != nil {
		log.Warn().Err(err).Msg("paraphrase upstream failed")
		return ""
	}
	return better
}

// degradedCaption is the last-resort caption when even the template engine
// produced nothing usable.
func degradedCaption(topic, tone string) string {
	runes := []rune(tone)
	if len(runes) > 0 {
		tone = strings.ToUpper(string(runes[0])) + string(runes[1:])
	}
	return strings.TrimSpace(topic + " — " + tone)
}
