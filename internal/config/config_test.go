package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3004", cfg.Server.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, "hash", cfg.Avatar.Policy)
	assert.Equal(t, 3, cfg.Avatar.LookupConcurrency)
	assert.False(t, cfg.Enrichment.Enabled)
	assert.Equal(t, 3, cfg.Enrichment.Concurrency)
	assert.Empty(t, cfg.Prompts.Path)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("AVATAR_POLICY", "remote")
	t.Setenv("AVATAR_LOOKUP_URL", "https://faces.example")
	t.Setenv("ENRICHMENT_ENABLED", "true")
	t.Setenv("ENRICHMENT_CONCURRENCY", "5")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, "remote", cfg.Avatar.Policy)
	assert.Equal(t, "https://faces.example", cfg.Avatar.LookupURL)
	assert.True(t, cfg.Enrichment.Enabled)
	assert.Equal(t, 5, cfg.Enrichment.Concurrency)
}

func TestInvalidNumericEnvFallsBack(t *testing.T) {
	t.Setenv("ENRICHMENT_CONCURRENCY", "lots")
	t.Setenv("ENRICHMENT_ENABLED", "yep")

	cfg := Load()

	assert.Equal(t, 3, cfg.Enrichment.Concurrency)
	assert.False(t, cfg.Enrichment.Enabled)
}
