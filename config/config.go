package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	ServerPort       string
	UpstreamBaseURL  string
	UpstreamAPIToken string
	RabbitURL        string // empty disables reconciliation alerts
	LogLevel         string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return Config{
		ServerPort:       getenv("SERVER_PORT", "8080"),
		UpstreamBaseURL:  must("UPSTREAM_BASE_URL"),
		UpstreamAPIToken: must("UPSTREAM_API_TOKEN"),
		RabbitURL:        os.Getenv("RABBIT_URL"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func must(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatal().Str("key", key).Msg("required environment variable missing")
	}
	return v
}
