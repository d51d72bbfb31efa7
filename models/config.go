package models

// Config holds all configuration for the application
type Config struct {
	// Application
	AppName    string `mapstructure:"app_name"`
	AppVersion string `mapstructure:"app_version"`
	AppBuild   string `mapstructure:"app_build"`
	AppEnv     string `mapstructure:"app_env"`
	AppHost    string `mapstructure:"app_host"`
	AppPort    string `mapstructure:"app_port"`

	// Auth (single static bearer token)
	AuthToken string `mapstructure:"auth_token"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// CORS
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Rate limiting, per endpoint class (requests per minute)
	RateLimitRequestsPerMinute int `mapstructure:"rate_limit_requests_per_minute"`
	RateLimitSearchPerMinute   int `mapstructure:"rate_limit_search_per_minute"`
	RateLimitBatchPerMinute    int `mapstructure:"rate_limit_batch_per_minute"`
	RateLimitSystemPerMinute   int `mapstructure:"rate_limit_system_per_minute"`

	// Cache
	CacheTTLSeconds           int `mapstructure:"cache_ttl_seconds"`
	CacheSweepIntervalSeconds int `mapstructure:"cache_sweep_interval_seconds"`

	// Pagination
	MaxPerPage     int `mapstructure:"max_per_page"`
	DefaultPerPage int `mapstructure:"default_per_page"`

	// Sample data
	SeedSampleData bool `mapstructure:"seed_sample_data"`

	// Base Path
	BasePath string `mapstructure:"basePath"`
}
