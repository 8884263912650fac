package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/trendpilot/api/internal/assets"
	"github.com/trendpilot/api/internal/client"
	"github.com/trendpilot/api/internal/config"
	"github.com/trendpilot/api/internal/handler"
	"github.com/trendpilot/api/internal/middleware"
	"github.com/trendpilot/api/internal/service"
	"github.com/trendpilot/api/internal/trends"
)

// testApp holds all components needed for testing
type testApp struct {
	app *fiber.App
}

// setupApp creates a Fiber app identical to main.go but with every external
// client left unconfigured, so services take their local fallbacks.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	validate := validator.New()

	// External clients are all unconfigured so services fall back locally
	openaiClient := client.NewOpenAIClient(&config.OpenAIConfig{}) // no API key
	captionSpace := client.NewSpaceClient("")
	paraphraseSpace := client.NewSpaceClient("")
	trendsClient := client.NewTrendsClient("") // errors, cache serves fallback

	matcher := assets.NewMatcher(assets.Catalog)
	trendsCache := trends.NewCache(trendsClient)

	trendsCfg := &config.TrendsConfig{Geo: "GB", Lang: "en-GB", TZ: 0, TTL: 900}

	// Services
	contentService := service.NewContentService(openaiClient, captionSpace, paraphraseSpace, matcher)
	imageService := service.NewImageService(openaiClient)
	trendsService := service.NewTrendsService(trendsCache, trendsCfg)

	// Handlers
	contentHandler := handler.NewContentHandler(contentService, validate)
	imageHandler := handler.NewImageHandler(imageService, validate)
	trendsHandler := handler.NewTrendsHandler(trendsService)

	// Fiber app
	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "trendpilot-api",
			"services": fiber.Map{
				"openai":           openaiClient.IsConfigured(),
				"caption_space":    captionSpace.IsConfigured(),
				"paraphrase_space": paraphraseSpace.IsConfigured(),
				"trends":           trendsClient.IsConfigured(),
			},
		})
	})

	// Very high rate limit so tests never get blocked
	api := app.Group("/api", middleware.NewRateLimiter(10000))
	api.Post("/content/generate", contentHandler.Generate)
	api.Post("/content/generate_image", imageHandler.Generate)
	api.Get("/trends", trendsHandler.Trending)

	return &testApp{app: app}
}

// doRequest is a helper to perform HTTP requests against the test app.
func doRequest(app *fiber.App, method, path string, body string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, path, bodyReader)
	if err != nil {
		return nil, err
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return app.Test(req, -1)
}

// readBody reads and returns the response body as a string.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(b)
}

// parseJSON parses response body into a map.
func parseJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	body := readBody(t, resp)
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, body)
	}
	return result
}

// assertStatus checks the HTTP status code.
func assertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("expected status %d, got %d", expected, resp.StatusCode)
	}
}
