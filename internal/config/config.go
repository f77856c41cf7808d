package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
	UploadMaxBytes int64
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type AssetsConfig struct {
	KnowledgeBasePath string
	FontDir           string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	OpenAI      OpenAIConfig
	Assets      AssetsConfig
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func Load() (*Config, error) {
	// a local .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 5000)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("UPLOAD_MAX_BYTES", 10<<20)
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("OPENAI_TIMEOUT", "60s")
	v.SetDefault("KNOWLEDGE_BASE_PATH", "data/knowledge_base.json")
	v.SetDefault("FONT_DIR", "fonts")

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV"))),
		HTTP: HTTPConfig{
			Host:           v.GetString("HTTP_HOST"),
			Port:           v.GetInt("HTTP_PORT"),
			AllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
			UploadMaxBytes: v.GetInt64("UPLOAD_MAX_BYTES"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  strings.TrimSpace(v.GetString("OPENAI_API_KEY")),
			BaseURL: strings.TrimSpace(v.GetString("OPENAI_BASE_URL")),
			Model:   strings.TrimSpace(v.GetString("OPENAI_MODEL")),
			Timeout: v.GetDuration("OPENAI_TIMEOUT"),
		},
		Assets: AssetsConfig{
			KnowledgeBasePath: v.GetString("KNOWLEDGE_BASE_PATH"),
			FontDir:           v.GetString("FONT_DIR"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if len(cfg.HTTP.AllowedOrigins) == 0 {
		cfg.HTTP.AllowedOrigins = []string{"*"}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", cfg.HTTP.Port)
	}
	if cfg.OpenAI.Timeout <= 0 {
		return fmt.Errorf("OPENAI_TIMEOUT must be a positive duration")
	}
	if cfg.HTTP.UploadMaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
