package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/ifab-lab/workshop-backend/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR,notEmpty"`

	// Session store configuration
	SessionTTL             time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"30m"`

	// Question catalog override (loaded from JSON file when present)
	CatalogPath string `env:"CATALOG_PATH" envDefault:"internal/config/questions.json"`

	// External service configurations
	LLMConnectorCfg LLMConnectorConfig `envPrefix:"LLM_"`
	ASRConnectorCfg ASRConnectorConfig `envPrefix:"ASR_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// File upload configuration
	FileUploadCfg FileUploadConfig `envPrefix:"FILE_UPLOAD_"`

	// Report configuration
	ReportCfg ReportConfig `envPrefix:"REPORT_"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS,notEmpty"`

	// Environment (set from flag, not from env var)
	Environment string
}

type LLMConnectorConfig struct {
	HTTPClientConfig
	CompleteEndpoint string               `env:"COMPLETE_ENDPOINT" envDefault:"/v1/complete"`
	Models           []string             `env:"MODELS" envDefault:"claude-3-haiku-20240307,claude-3-sonnet-20240229,claude-3-opus-20240229"`
	MaxTokens        int                  `env:"MAX_TOKENS" envDefault:"4000"`
	Temperature      float64              `env:"TEMPERATURE" envDefault:"0.7"`
	Retry            pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type ASRConnectorConfig struct {
	HTTPClientConfig
	TranscribeEndpoint string               `env:"TRANSCRIBE_ENDPOINT" envDefault:"/v1/transcribe"`
	Language           string               `env:"LANGUAGE" envDefault:"it"`
	Retry              pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"90s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"90s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL"`
}

// FileUploadConfig holds upload limits for voice answers
type FileUploadConfig struct {
	MaxAudioFileSize int64 `env:"MAX_AUDIO_FILE_SIZE" envDefault:"26214400"` // 25 MiB
}

// ReportConfig holds branding embedded into exported reports
type ReportConfig struct {
	Title        string `env:"TITLE" envDefault:"Agentic AI Workshop - Report Analisi"`
	Organization string `env:"ORGANIZATION" envDefault:"IFAB - International Foundation Big Data & Artificial Intelligence for Human Development"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if len(cfg.LLMConnectorCfg.Models) == 0 {
		errors = append(errors, "LLM_MODELS must list at least one model")
	}

	if cfg.LLMConnectorCfg.MaxTokens < 1 || cfg.LLMConnectorCfg.MaxTokens > 200000 {
		errors = append(errors, fmt.Sprintf("LLM_MAX_TOKENS must be between 1 and 200000, got %d", cfg.LLMConnectorCfg.MaxTokens))
	}

	if cfg.LLMConnectorCfg.Temperature < 0 || cfg.LLMConnectorCfg.Temperature > 2 {
		errors = append(errors, fmt.Sprintf("LLM_TEMPERATURE must be between 0 and 2, got %v", cfg.LLMConnectorCfg.Temperature))
	}

	if cfg.SessionTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("SESSION_TTL must be at least 1m, got %v", cfg.SessionTTL))
	}

	if cfg.FileUploadCfg.MaxAudioFileSize < 1 {
		errors = append(errors, fmt.Sprintf("FILE_UPLOAD_MAX_AUDIO_FILE_SIZE must be positive, got %d", cfg.FileUploadCfg.MaxAudioFileSize))
	}

	// Real connectors need a service URL; mocks run without one.
	if !cfg.EnableMocks {
		if cfg.LLMConnectorCfg.Url == "" {
			errors = append(errors, "LLM_SERVICE_URL is required when mocks are disabled")
		}
		if cfg.ASRConnectorCfg.Url == "" {
			errors = append(errors, "ASR_SERVICE_URL is required when mocks are disabled")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
