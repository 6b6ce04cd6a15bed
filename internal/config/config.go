// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service.
type Config struct {
	Port           string
	Environment    string
	LogLevel       string
	AllowedOrigins []string

	DeepgramAPIKey string
	DeepgramURL    string
	DeepgramModel  string
	RingbaAPIToken string

	LLMGatewayURL string
	LLMAPIKey     string
	LLMModel      string

	RedisURL string
	CacheTTL time.Duration

	DatasetPath     string
	TranscribeDelay time.Duration

	MockTranscribe bool
	MockLLM        bool
}

// Load reads configuration from the environment, after loading .env if
// one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "local"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DeepgramAPIKey: os.Getenv("DEEPGRAM_API_KEY"),
		DeepgramURL:    getEnv("DEEPGRAM_URL", "https://api.deepgram.com/v1/listen"),
		DeepgramModel:  getEnv("DEEPGRAM_MODEL", "nova-2"),
		RingbaAPIToken: os.Getenv("RINGBA_API_TOKEN"),
		LLMGatewayURL:  os.Getenv("LLM_GATEWAY_URL"),
		LLMAPIKey:      os.Getenv("LLM_API_KEY"),
		LLMModel:       os.Getenv("LLM_MODEL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		DatasetPath:    os.Getenv("DATASET_PATH"),
	}

	for _, o := range strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	ttl, err := strconv.Atoi(getEnv("CACHE_TTL_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL_MINUTES: %w", err)
	}
	cfg.CacheTTL = time.Duration(ttl) * time.Minute

	delay, err := strconv.Atoi(getEnv("TRANSCRIBE_DELAY_MS", "2000"))
	if err != nil {
		return nil, fmt.Errorf("invalid TRANSCRIBE_DELAY_MS: %w", err)
	}
	cfg.TranscribeDelay = time.Duration(delay) * time.Millisecond

	if cfg.MockTranscribe, err = getBool("USE_MOCK_TRANSCRIBE"); err != nil {
		return nil, err
	}
	if cfg.MockLLM, err = getBool("USE_MOCK_LLM"); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv gets an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
