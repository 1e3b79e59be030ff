package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string           `mapstructure:"environment"`
	Server       ServerConfig     `mapstructure:"server"`
	Database     DatabaseConfig   `mapstructure:"database"`
	Search       SearchConfig     `mapstructure:"search"`
	History      HistoryConfig    `mapstructure:"history"`
	Auth         AuthConfig       `mapstructure:"auth"`
	RateLimiting RateLimitConfig  `mapstructure:"rate_limiting"`
	Security     SecurityConfig   `mapstructure:"security"`
	Logging      LoggingConfig    `mapstructure:"logging"`
	Monitoring   MonitoringConfig `mapstructure:"monitoring"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	LogQueries            bool          `mapstructure:"log_queries"`
}

// SearchConfig contains search boundary settings
type SearchConfig struct {
	DefaultPerPage int           `mapstructure:"default_per_page"`
	MaxPerPage     int           `mapstructure:"max_per_page"`
	SuggestLimit   int           `mapstructure:"suggest_limit"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// HistoryConfig contains search history recording settings
type HistoryConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	PoolSize     int           `mapstructure:"pool_size"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// AuthConfig contains token validation settings
type AuthConfig struct {
	JWKSURL        string `mapstructure:"jwks_url"`
	JWTSecret      string `mapstructure:"jwt_secret"`
	DevAuthEnabled bool   `mapstructure:"dev_auth_enabled"`
	DevAuthToken   string `mapstructure:"dev_auth_token"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled      bool `mapstructure:"enabled"`
	SearchRPS    int  `mapstructure:"search_rps"`
	SearchBurst  int  `mapstructure:"search_burst"`
	DefaultRPS   int  `mapstructure:"default_rps"`
	DefaultBurst int  `mapstructure:"default_burst"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS  bool     `mapstructure:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	CORSMethods []string `mapstructure:"cors_methods"`
	CORSHeaders []string `mapstructure:"cors_headers"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// MonitoringConfig contains monitoring settings
type MonitoringConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MetricsPath string `mapstructure:"metrics_path"`
}
