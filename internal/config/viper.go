// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"csv" yaml:"csv"`

	AI struct {
		Enabled              bool   `mapstructure:"enabled" yaml:"enabled"`
		Model                string `mapstructure:"model" yaml:"model"`
		RequestsPerMinute    int    `mapstructure:"requests_per_minute" yaml:"requests_per_minute"`
		ChatTimeoutSeconds   int    `mapstructure:"chat_timeout_seconds" yaml:"chat_timeout_seconds"`
		VisionTimeoutSeconds int    `mapstructure:"vision_timeout_seconds" yaml:"vision_timeout_seconds"`
		MaxBatchRetries      int    `mapstructure:"max_batch_retries" yaml:"max_batch_retries"`
		APIKey               string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Extraction struct {
		// MinViableTransactions is the floor a tier's output must clear
		// before the orchestrator accepts it instead of cascading further.
		MinViableTransactions int `mapstructure:"min_viable_transactions" yaml:"min_viable_transactions"`
		// ScannedPageCharThreshold is the mean-chars-per-page bar under
		// which the first three pages are judged scanned (§4.A).
		ScannedPageCharThreshold int `mapstructure:"scanned_page_char_threshold" yaml:"scanned_page_char_threshold"`
		// VisionDPI is the rasterization resolution shared by bank-logo
		// detection crops and the Tier-3 OCR page path.
		VisionDPI int `mapstructure:"vision_dpi" yaml:"vision_dpi"`
		// WorkerPoolSize bounds concurrent LLM batch fan-out and concurrent
		// document processing in `extract batch`.
		WorkerPoolSize int `mapstructure:"worker_pool_size" yaml:"worker_pool_size"`
		// BalanceChainTolerance is the absolute currency-unit slack allowed
		// when validating balance[i-1] +/- amount[i] == balance[i].
		BalanceChainTolerance float64 `mapstructure:"balance_chain_tolerance" yaml:"balance_chain_tolerance"`
	} `mapstructure:"extraction" yaml:"extraction"`

	Poppler struct {
		PdftotextPath string `mapstructure:"pdftotext_path" yaml:"pdftotext_path"`
		PdftoppmPath  string `mapstructure:"pdftoppm_path" yaml:"pdftoppm_path"`
	} `mapstructure:"poppler" yaml:"poppler"`

	Data struct {
		Directory     string `mapstructure:"directory" yaml:"directory"`
		BackupEnabled bool   `mapstructure:"backup_enabled" yaml:"backup_enabled"`
	} `mapstructure:"data" yaml:"data"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.extractcore")
	v.AddConfigPath(".extractcore")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("EXTRACTCORE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	// 5. Handle special case for API key (always from env, not prefixed)
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.include_headers", true)

	v.SetDefault("ai.enabled", true)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.requests_per_minute", 10)
	v.SetDefault("ai.chat_timeout_seconds", 120)
	v.SetDefault("ai.vision_timeout_seconds", 60)
	v.SetDefault("ai.max_batch_retries", 2)

	v.SetDefault("extraction.min_viable_transactions", 3)
	v.SetDefault("extraction.scanned_page_char_threshold", 20)
	v.SetDefault("extraction.vision_dpi", 150)
	v.SetDefault("extraction.worker_pool_size", 4)
	v.SetDefault("extraction.balance_chain_tolerance", 0.02)

	v.SetDefault("poppler.pdftotext_path", "pdftotext")
	v.SetDefault("poppler.pdftoppm_path", "pdftoppm")

	v.SetDefault("data.directory", "")
	v.SetDefault("data.backup_enabled", true)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}
		if config.AI.RequestsPerMinute < 1 || config.AI.RequestsPerMinute > 1000 {
			return fmt.Errorf("ai.requests_per_minute must be between 1 and 1000, got: %d", config.AI.RequestsPerMinute)
		}
		if config.AI.ChatTimeoutSeconds < 1 || config.AI.ChatTimeoutSeconds > 300 {
			return fmt.Errorf("ai.chat_timeout_seconds must be between 1 and 300, got: %d", config.AI.ChatTimeoutSeconds)
		}
		if config.AI.VisionTimeoutSeconds < 1 || config.AI.VisionTimeoutSeconds > 300 {
			return fmt.Errorf("ai.vision_timeout_seconds must be between 1 and 300, got: %d", config.AI.VisionTimeoutSeconds)
		}
	}

	if config.Extraction.WorkerPoolSize < 1 {
		return fmt.Errorf("extraction.worker_pool_size must be at least 1, got: %d", config.Extraction.WorkerPoolSize)
	}

	if config.Extraction.BalanceChainTolerance < 0 {
		return fmt.Errorf("extraction.balance_chain_tolerance must be non-negative, got: %f", config.Extraction.BalanceChainTolerance)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
