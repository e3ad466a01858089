package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Gemini    GeminiConfig
	RateLimit RateLimitConfig
	Upload    UploadConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	Model          string        `mapstructure:"model"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// PerMinute caps inbound analyze requests. ModelRPM caps outbound
	// Gemini calls independently of request traffic.
	PerMinute int `mapstructure:"per_minute"`
	ModelRPM  int `mapstructure:"model_rpm"`
}

// UploadConfig holds multipart upload limits
type UploadConfig struct {
	MaxSizeMB int `mapstructure:"max_size_mb"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pricelens/")

	// Environment variable settings
	v.SetEnvPrefix("PRICELENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Gemini defaults
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.request_timeout", "0s")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_minute", 60)
	v.SetDefault("ratelimit.model_rpm", 0)

	// Upload defaults
	v.SetDefault("upload.max_size_mb", 10)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Gemini.APIKey == "" {
		return fmt.Errorf("Gemini API key is required (set PRICELENS_GEMINI_API_KEY)")
	}

	if config.Gemini.Model == "" {
		return fmt.Errorf("Gemini model name must not be empty")
	}

	if config.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("upload max size must be positive, got: %d", config.Upload.MaxSizeMB)
	}

	return nil
}
