package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Backend   BackendConfig
	Graph     GraphConfig
	Interview InterviewConfig
	Redis     RedisConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	// AppURL is this gateway's public origin, used for redirect targets.
	AppURL string
}

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type GraphConfig struct {
	BaseURL string
	APIKey  string
}

type InterviewConfig struct {
	PublicKey   string
	AssistantID string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		AppURL:      req("APP_URL"),
	}

	cfg.Backend = BackendConfig{
		BaseURL: req("BACKEND_URL"),
		Timeout: durationSeconds(opt("BACKEND_TIMEOUT_SECONDS"), 30*time.Second),
	}

	cfg.Graph = GraphConfig{
		BaseURL: opt("LANGGRAPH_URL"),
		APIKey:  opt("LANGGRAPH_API_KEY"),
	}

	cfg.Interview = InterviewConfig{
		PublicKey:   opt("VAPI_PUBLIC_KEY"),
		AssistantID: opt("VAPI_ASSISTANT_ID"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func durationSeconds(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return time.Duration(v) * time.Second
}
