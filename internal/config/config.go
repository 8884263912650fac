package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// readSecret reads a Docker secret from a file path specified by an env var
// with _FILE suffix. If FOO is already set directly, the file is skipped.
// If FOO_FILE is set, reads the file content and sets FOO.
func readSecret(envKey string) {
	if os.Getenv(envKey) != "" {
		return
	}
	fileKey := envKey + "_FILE"
	filePath := os.Getenv(fileKey)
	if filePath == "" {
		return
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return
	}
	val := strings.TrimSpace(string(data))
	os.Setenv(envKey, val)
}

type Config struct {
	Server    ServerConfig
	OpenAI    OpenAIConfig
	Spaces    SpacesConfig
	Trends    TrendsConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port        string
	Env         string
	LogLevel    string
	CORSOrigins string
}

type OpenAIConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	ImageModel string
}

// SpacesConfig points at the hosted inference Spaces for caption generation
// and paraphrasing. An empty URL leaves that upstream unconfigured.
type SpacesConfig struct {
	CaptionURL    string
	ParaphraseURL string
}

type TrendsConfig struct {
	BaseURL string
	Geo     string
	Lang    string
	TZ      int // timezone offset in minutes, 0 is UTC
	TTL     int // seconds
}

type RateLimitConfig struct {
	PerMinute int
}

func Load() (*Config, error) {
	// Read Docker Swarm secrets from _FILE env vars before Viper binds
	readSecret("OPENAI_API_KEY")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Environment variables
	viper.AutomaticEnv()

	// Bind environment variables with underscores to nested config keys
	_ = viper.BindEnv("server.port", "SERVER_PORT", "PORT")
	_ = viper.BindEnv("server.env", "SERVER_ENV")
	_ = viper.BindEnv("server.log_level", "LOG_LEVEL")
	_ = viper.BindEnv("server.cors_origins", "CORS_ORIGINS")
	_ = viper.BindEnv("openai.api_key", "OPENAI_API_KEY")
	_ = viper.BindEnv("openai.base_url", "OPENAI_BASE_URL")
	_ = viper.BindEnv("openai.model", "OPENAI_MODEL")
	_ = viper.BindEnv("openai.image_model", "OPENAI_IMAGE_MODEL")
	_ = viper.BindEnv("spaces.caption_url", "CAPTION_SPACE_URL")
	_ = viper.BindEnv("spaces.paraphrase_url", "PARAPHRASE_SPACE_URL")
	_ = viper.BindEnv("trends.base_url", "TRENDS_BASE_URL")
	_ = viper.BindEnv("trends.geo", "TRENDS_GEO")
	_ = viper.BindEnv("trends.lang", "TRENDS_LANG")
	_ = viper.BindEnv("trends.tz", "TRENDS_TZ")
	_ = viper.BindEnv("trends.ttl", "TRENDS_TTL")
	_ = viper.BindEnv("ratelimit.per_minute", "RATELIMIT_PER_MIN")

	// Defaults
	viper.SetDefault("server.port", "5000")
	viper.SetDefault("server.env", "development")
	viper.SetDefault("server.log_level", "info")
	viper.SetDefault("server.cors_origins", "*")

	// OpenAI defaults
	viper.SetDefault("openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("openai.image_model", "gpt-image-1")

	// Trends defaults
	viper.SetDefault("trends.base_url", "https://trends.google.com")
	viper.SetDefault("trends.geo", "GB")
	viper.SetDefault("trends.lang", "en-GB")
	viper.SetDefault("trends.tz", 0)
	viper.SetDefault("trends.ttl", 900)

	viper.SetDefault("ratelimit.per_minute", 60)

	// Try to read config file (optional)
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Port:        viper.GetString("server.port"),
			Env:         viper.GetString("server.env"),
			LogLevel:    viper.GetString("server.log_level"),
			CORSOrigins: viper.GetString("server.cors_origins"),
		},
		OpenAI: OpenAIConfig{
			APIKey:     viper.GetString("openai.api_key"),
			BaseURL:    viper.GetString("openai.base_url"),
			Model:      viper.GetString("openai.model"),
			ImageModel: viper.GetString("openai.image_model"),
		},
		Spaces: SpacesConfig{
			CaptionURL:    viper.GetString("spaces.caption_url"),
			ParaphraseURL: viper.GetString("spaces.paraphrase_url"),
		},
		Trends: TrendsConfig{
			BaseURL: viper.GetString("trends.base_url"),
			Geo:     viper.GetString("trends.geo"),
			Lang:    viper.GetString("trends.lang"),
			TZ:      viper.GetInt("trends.tz"),
			TTL:     viper.GetInt("trends.ttl"),
		},
		RateLimit: RateLimitConfig{
			PerMinute: viper.GetInt("ratelimit.per_minute"),
		},
	}

	return cfg, nil
}
