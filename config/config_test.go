package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	optionals := []string{
		"AI_PROVIDER", "AI_MODEL", "GEMINI_API_KEY", "OPENAI_API_KEY",
		"OPENAI_BASE_URL", "TICK_INTERVAL", "ASSISTANT_TIMEOUT",
		"LOG_FILE", "LOG_MAX_SIZE_MB", "LOG_MAX_BACKUPS",
	}
	for _, k := range optionals {
		os.Unsetenv(k)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.AIProvider != "gemini" {
		t.Errorf("Expected AIProvider 'gemini', got '%s'", cfg.AIProvider)
	}
	if cfg.TickInterval != 5*time.Second {
		t.Errorf("Expected TickInterval 5s, got %v", cfg.TickInterval)
	}
	if cfg.AssistantTimeout != 20*time.Second {
		t.Errorf("Expected AssistantTimeout 20s, got %v", cfg.AssistantTimeout)
	}
	if cfg.LogFile != "nexustrader.log" {
		t.Errorf("Expected LogFile 'nexustrader.log', got '%s'", cfg.LogFile)
	}
	if cfg.LogMaxSizeMB != 5 {
		t.Errorf("Expected LogMaxSizeMB 5, got %d", cfg.LogMaxSizeMB)
	}
	if cfg.LogMaxBackups != 3 {
		t.Errorf("Expected LogMaxBackups 3, got %d", cfg.LogMaxBackups)
	}

	// Missing credentials are a supported degraded mode, never an error.
	if cfg.GeminiAPIKey != "" || cfg.OpenAIAPIKey != "" {
		t.Error("Expected empty credentials")
	}
}

func TestLoadOverrides(t *testing.T) {
	overrides := map[string]string{
		"AI_PROVIDER":       "openai",
		"AI_MODEL":          "gpt-4o",
		"OPENAI_API_KEY":    "test_key",
		"OPENAI_BASE_URL":   "http://localhost:11434/v1",
		"TICK_INTERVAL":     "2s",
		"ASSISTANT_TIMEOUT": "30s",
	}
	for k, v := range overrides {
		os.Setenv(k, v)
		defer os.Unsetenv(k)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.AIProvider != "openai" {
		t.Errorf("Expected AIProvider 'openai', got '%s'", cfg.AIProvider)
	}
	if cfg.AIModel != "gpt-4o" {
		t.Errorf("Expected AIModel 'gpt-4o', got '%s'", cfg.AIModel)
	}
	if cfg.OpenAIBaseURL != "http://localhost:11434/v1" {
		t.Errorf("Expected custom base URL, got '%s'", cfg.OpenAIBaseURL)
	}
	if cfg.TickInterval != 2*time.Second {
		t.Errorf("Expected TickInterval 2s, got %v", cfg.TickInterval)
	}
	if cfg.AssistantTimeout != 30*time.Second {
		t.Errorf("Expected AssistantTimeout 30s, got %v", cfg.AssistantTimeout)
	}
}
