package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    validate:"required"`
	LLM       LLMConfig       `mapstructure:"llm"       validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// CORSOrigins is a comma-separated allow-list of browser origins.
	CORSOrigins string `mapstructure:"cors_origins" validate:"required"`
}

// LLMConfig contains all generation-provider settings. An empty APIKey is a
// supported state: the service runs in mock mode and never calls out.
type LLMConfig struct {
	APIKey         string  `mapstructure:"api_key"`
	BaseURL        string  `mapstructure:"base_url"        validate:"required,url"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	MaxTokens      int     `mapstructure:"max_tokens"      validate:"required,gt=0"`
	Temperature    float64 `mapstructure:"temperature"     validate:"gte=0,lte=2"`
}

// RateLimitConfig contains the per-client admission quota.
type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute" validate:"required,gt=0"`
}
