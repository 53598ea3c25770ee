package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	LLM      LLMConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Port      string `env:"PORT" envDefault:"3000"`
	Env       string `env:"ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// DatabaseConfig describes the two independent stores. Paths are used by
// the sqlite driver, DSNs by postgres.
type DatabaseConfig struct {
	Driver       string `env:"DB_DRIVER" envDefault:"sqlite"`
	InterviewDB  string `env:"INTERVIEW_DB" envDefault:"interview_history.db"`
	ChatDB       string `env:"CHAT_DB" envDefault:"chat_history.db"`
	InterviewDSN string `env:"INTERVIEW_DB_DSN"`
	ChatDSN      string `env:"CHAT_DB_DSN"`
}

type LLMConfig struct {
	Provider     string        `env:"LLM_PROVIDER" envDefault:"openai"`
	APIURL       string        `env:"LLM_API_URL" envDefault:"https://api.groq.com/openai/v1"`
	APIKey       string        `env:"LLM_API_KEY"`
	Model        string        `env:"LLM_MODEL" envDefault:"llama-3.3-70b-versatile"`
	GeminiAPIKey string        `env:"GEMINI_API_KEY"`
	GeminiAPIURL string        `env:"GEMINI_API_URL"`
	GeminiModel  string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	Temperature  float32       `env:"LLM_TEMPERATURE" envDefault:"0.7"`
	Timeout      time.Duration `env:"LLM_TIMEOUT" envDefault:"60s"`
}

type StorageConfig struct {
	UploadPath  string `env:"UPLOAD_PATH" envDefault:"./uploads"`
	MaxFileSize int64  `env:"MAX_FILE_SIZE" envDefault:"10485760"`
}

// Load reads an optional .env file and then binds the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found. Using environment and default values.")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Database.Driver = strings.ToLower(cfg.Database.Driver)
	cfg.LLM.Provider = strings.ToLower(cfg.LLM.Provider)

	return cfg, nil
}

// Validate checks the values the server cannot start without.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if c.Database.InterviewDSN == "" || c.Database.ChatDSN == "" {
			return fmt.Errorf("INTERVIEW_DB_DSN and CHAT_DB_DSN are required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER: %q", c.Database.Driver)
	}

	switch c.LLM.Provider {
	case ProviderOpenAI:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("LLM_API_KEY is required for the %s provider", ProviderOpenAI)
		}
	case ProviderGemini:
		if c.LLM.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the %s provider", ProviderGemini)
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER: %q", c.LLM.Provider)
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}
