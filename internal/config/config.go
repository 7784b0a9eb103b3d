// Package config loads process configuration from the environment.
// Every external credential is independently optional; a missing one
// degrades the affected operations instead of preventing startup. Only the
// API secret is effectively required - without it every authenticated call
// fails with a server error.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the immutable-after-load process configuration.
type Config struct {
	Addr string

	// APISecret authenticates inbound /v1 calls via the X-API-KEY header.
	APISecret string

	// OpenAI credentials drive both embedding and generation. Absence of
	// the key leaves both capabilities unconfigured.
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	EmbeddingModel string
	ChatModel      string

	// Vector store selection: "pinecone" (default when a key is present),
	// "sqlite" or "memory".
	VectorBackend  string
	PineconeAPIKey string
	PineconeIndex  string
	DataPath       string

	// SeedDir, when set, is watched for tenant FAQ seed files.
	SeedDir string

	// DefaultLanguage is the detection fallback code.
	DefaultLanguage string

	TopK           int
	RequestTimeout time.Duration
	AllowedOrigins []string
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	cfg := &Config{
		Addr:            ":" + getEnv("PORT", "8000"),
		APISecret:       os.Getenv("API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		EmbeddingModel:  getEnv("EMBEDDING_MODEL", "text-embedding-ada-002"),
		ChatModel:       getEnv("CHAT_MODEL", "gpt-3.5-turbo"),
		VectorBackend:   getEnv("VECTOR_BACKEND", "pinecone"),
		PineconeAPIKey:  os.Getenv("PINECONE_API_KEY"),
		PineconeIndex:   getEnv("PINECONE_INDEX_NAME", "multilang-chatbot-index"),
		DataPath:        getEnv("DATA_PATH", "./data"),
		SeedDir:         os.Getenv("SEED_DIR"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		TopK:            getEnvInt("RETRIEVAL_TOP_K", 3),
		RequestTimeout:  getEnvDuration("EXTERNAL_TIMEOUT", 30*time.Second),
		AllowedOrigins:  splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4000")),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
