package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	for _, key := range []string{"APP_ENV", "HTTP_HOST", "HTTP_PORT", "OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_TIMEOUT", "CORS_ALLOWED_ORIGINS", "UPLOAD_MAX_BYTES", "KNOWLEDGE_BASE_PATH", "FONT_DIR"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, int64(10<<20), cfg.HTTP.UploadMaxBytes)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, 60*time.Second, cfg.OpenAI.Timeout)
	assert.Empty(t, cfg.OpenAI.APIKey)
	assert.Equal(t, "data/knowledge_base.json", cfg.Assets.KnowledgeBasePath)
	assert.Equal(t, "fonts", cfg.Assets.FontDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("APP_ENV", "Production")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("OPENAI_API_KEY", " sk-test ")
	t.Setenv("OPENAI_TIMEOUT", "15s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://ensaf.sa, https://app.ensaf.sa,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, 15*time.Second, cfg.OpenAI.Timeout)
	assert.Equal(t, []string{"https://ensaf.sa", "https://app.ensaf.sa"}, cfg.HTTP.AllowedOrigins)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HTTP_PORT", "70000")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("HTTP_PORT", "5000")
	t.Setenv("OPENAI_TIMEOUT", "0s")
	_, err = Load()
	assert.Error(t, err)
}

func TestParseList(t *testing.T) {
	assert.Nil(t, parseList("  "))
	assert.Equal(t, []string{"a", "b"}, parseList(" a, ,b "))
}
