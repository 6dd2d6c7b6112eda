package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Gemini     GeminiConfig
	Prompts    PromptsConfig
	Avatar     AvatarConfig
	Enrichment EnrichmentConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type PromptsConfig struct {
	// Path overrides the embedded template set when non-empty.
	Path string
}

type AvatarConfig struct {
	// Policy selects the assigner: "hash" (default), "shuffle", or "remote".
	Policy            string
	LookupURL         string
	LookupConcurrency int
}

type EnrichmentConfig struct {
	Enabled     bool
	Concurrency int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3004"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Prompts: PromptsConfig{
			Path: getEnv("PROMPTS_PATH", ""),
		},
		Avatar: AvatarConfig{
			Policy:            getEnv("AVATAR_POLICY", "hash"),
			LookupURL:         getEnv("AVATAR_LOOKUP_URL", ""),
			LookupConcurrency: getEnvAsInt("AVATAR_LOOKUP_CONCURRENCY", 3),
		},
		Enrichment: EnrichmentConfig{
			Enabled:     getEnvAsBool("ENRICHMENT_ENABLED", false),
			Concurrency: getEnvAsInt("ENRICHMENT_CONCURRENCY", 3),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
