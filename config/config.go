package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting, mapped from the environment.
type Config struct {
	// Assistant backend. A missing credential is a supported degraded mode:
	// the chat panel answers with a fixed unavailability message.
	AIProvider    string `envconfig:"AI_PROVIDER" default:"gemini"`
	AIModel       string `envconfig:"AI_MODEL"`
	GeminiAPIKey  string `envconfig:"GEMINI_API_KEY"`
	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL"`

	TickInterval     time.Duration `envconfig:"TICK_INTERVAL" default:"5s"`
	AssistantTimeout time.Duration `envconfig:"ASSISTANT_TIMEOUT" default:"20s"`

	// The TUI owns stdout, so all diagnostics go to a rotating file.
	LogFile       string `envconfig:"LOG_FILE" default:"nexustrader.log"`
	LogMaxSizeMB  int64  `envconfig:"LOG_MAX_SIZE_MB" default:"5"`
	LogMaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"3"`
}

// Load reads a .env file if one exists, then maps environment variables onto
// Config. The .env file is optional, so its load error is ignored.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
