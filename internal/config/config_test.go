package config

import (
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "hirehack")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("APP_URL", "http://localhost:8080")
	t.Setenv("BACKEND_URL", "http://backend.local")
}

func TestLoadRequiredOnly(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.AppName != "hirehack" || cfg.App.HTTPPort != "8080" {
		t.Fatalf("app config = %+v", cfg.App)
	}
	if cfg.Backend.BaseURL != "http://backend.local" {
		t.Fatalf("backend config = %+v", cfg.Backend)
	}
	if cfg.Backend.Timeout != 30*time.Second {
		t.Fatalf("default timeout = %v", cfg.Backend.Timeout)
	}
	if cfg.Graph.BaseURL != "" || cfg.Interview.PublicKey != "" || cfg.Redis.Host != "" {
		t.Fatalf("optional config should be empty: %+v", cfg)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BACKEND_URL", "")
	t.Setenv("APP_URL", "")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, key := range []string{"APP_URL", "BACKEND_URL"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("error %q should name %s", err, key)
		}
	}
}

func TestLoadOptional(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BACKEND_TIMEOUT_SECONDS", "5")
	t.Setenv("LANGGRAPH_URL", "http://graph.local")
	t.Setenv("LANGGRAPH_API_KEY", "gk")
	t.Setenv("VAPI_PUBLIC_KEY", "pk")
	t.Setenv("VAPI_ASSISTANT_ID", "aid")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend.Timeout != 5*time.Second {
		t.Fatalf("timeout = %v", cfg.Backend.Timeout)
	}
	if cfg.Graph.BaseURL != "http://graph.local" || cfg.Graph.APIKey != "gk" {
		t.Fatalf("graph config = %+v", cfg.Graph)
	}
	if cfg.Interview.PublicKey != "pk" || cfg.Interview.AssistantID != "aid" {
		t.Fatalf("interview config = %+v", cfg.Interview)
	}
	if cfg.Redis.Host != "localhost" || cfg.Redis.Port != "6379" {
		t.Fatalf("redis config = %+v", cfg.Redis)
	}
}

func TestDurationSecondsFallback(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"", 30 * time.Second},
		{"abc", 30 * time.Second},
		{"-5", 30 * time.Second},
		{"0", 30 * time.Second},
		{"12", 12 * time.Second},
	}
	for _, tc := range cases {
		if got := durationSeconds(tc.raw, 30*time.Second); got != tc.want {
			t.Fatalf("durationSeconds(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
