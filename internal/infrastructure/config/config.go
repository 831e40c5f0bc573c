package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Durable local store
	DBPath string

	// Groq explanation endpoint (OpenAI-compatible)
	GroqURL   string // e.g. "https://api.groq.com/openai"
	GroqModel string // e.g. "llama3-8b-8192"

	// Remote question document store. Empty disables remote sync.
	RemoteURL string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		DBPath:          getenvDefault("DB_PATH", "opositest.db"),
		GroqURL:         getenvDefault("GROQ_URL", "https://api.groq.com/openai"),
		GroqModel:       getenvDefault("GROQ_MODEL", "llama3-8b-8192"),
		RemoteURL:       os.Getenv("REMOTE_URL"),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
