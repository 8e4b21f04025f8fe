package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the process configuration, read from environment variables.
type Config struct {
	MongoURI       string
	GeminiAPIKey   string
	Port           string
	AllowedOrigins []string
	ServerEnv      string
}

const (
	defaultMongoURI = "mongodb://localhost:27017"
	defaultPort     = "5000"
)

var defaultOrigins = []string{
	"https://samay-sahayak.vercel.app",
	"http://localhost:3000",
}

// Load reads MONGODB_URI, GEMINI_API_KEY, PORT, ALLOWED_ORIGINS (comma
// separated) and SERVER_ENV, applying local-development defaults for
// anything unset.
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{
		MongoURI:     k.String("mongodb_uri"),
		GeminiAPIKey: k.String("gemini_api_key"),
		Port:         k.String("port"),
		ServerEnv:    k.String("server_env"),
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = defaultMongoURI
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.ServerEnv == "" {
		cfg.ServerEnv = "development"
	}

	if raw := k.String("allowed_origins"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = append([]string(nil), defaultOrigins...)
	}
	return cfg, nil
}
