package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"mockapi-backend/models"

	"github.com/spf13/viper"
)

// GetConfig read the configuration from environment variables or config files
func GetConfig() (*models.Config, error) {
	config, err := Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return config, nil
}

// Load initializes and returns the application configuration using Viper
func Load() (*models.Config, error) {
	v := viper.New()

	// Set configuration file details
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../")

	setDefaults(v)

	// Enable environment variable support
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Try to read config file
	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Config file not found (%v), using defaults and environment variables\n", err)
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	// Handle nested JSON structure from config.json
	if v.IsSet("app") {
		flattenNestedConfig(v)
	}

	var config models.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Application defaults
	v.SetDefault("app_name", "Mock API Backend")
	v.SetDefault("app_version", "1.0.0")
	v.SetDefault("app_build", "dev")
	v.SetDefault("app_env", "development")
	v.SetDefault("app_host", "0.0.0.0")
	v.SetDefault("app_port", "5001")

	// Auth defaults
	v.SetDefault("auth_token", "ft_test_api_2024")

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	// CORS defaults
	v.SetDefault("cors_origins", []string{"*"})

	// Rate limiting defaults, per endpoint class
	v.SetDefault("rate_limit_requests_per_minute", 100)
	v.SetDefault("rate_limit_search_per_minute", 50)
	v.SetDefault("rate_limit_batch_per_minute", 20)
	v.SetDefault("rate_limit_system_per_minute", 30)

	// Cache defaults
	v.SetDefault("cache_ttl_seconds", 60)
	v.SetDefault("cache_sweep_interval_seconds", 30)

	// Pagination defaults
	v.SetDefault("max_per_page", 100)
	v.SetDefault("default_per_page", 10)

	// Sample data
	v.SetDefault("seed_sample_data", true)

	// Base Path default
	v.SetDefault("basePath", "/api")
}

// validate checks if all required configuration is provided
func validate(c *models.Config) error {
	if c.AuthToken == "" {
		return fmt.Errorf("AUTH_TOKEN must not be empty")
	}
	if c.DefaultPerPage <= 0 || c.MaxPerPage <= 0 {
		return fmt.Errorf("pagination limits must be positive")
	}
	if c.DefaultPerPage > c.MaxPerPage {
		return fmt.Errorf("DEFAULT_PER_PAGE cannot exceed MAX_PER_PAGE")
	}
	if c.CacheTTLSeconds <= 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must be positive")
	}
	return nil
}

// flattenNestedConfig flattens the nested JSON structure to flat keys for easier mapping
func flattenNestedConfig(v *viper.Viper) {
	// App section
	if v.IsSet("app.name") {
		v.SetDefault("app_name", v.GetString("app.name"))
	}
	if v.IsSet("app.version") {
		v.SetDefault("app_version", v.GetString("app.version"))
	}
	if v.IsSet("app.build") {
		v.SetDefault("app_build", v.GetString("app.build"))
	}
	if v.IsSet("app.env") {
		v.SetDefault("app_env", v.GetString("app.env"))
	}
	if v.IsSet("app.host") {
		v.SetDefault("app_host", v.GetString("app.host"))
	}
	if v.IsSet("app.port") {
		v.SetDefault("app_port", v.GetString("app.port"))
	}

	// Auth section
	if v.IsSet("auth.token") {
		v.SetDefault("auth_token", v.GetString("auth.token"))
	}

	// Logging section
	if v.IsSet("logging.level") {
		v.SetDefault("log_level", v.GetString("logging.level"))
	}
	if v.IsSet("logging.format") {
		v.SetDefault("log_format", v.GetString("logging.format"))
	}

	// CORS section
	if v.IsSet("cors.origins") {
		v.SetDefault("cors_origins", v.GetStringSlice("cors.origins"))
	}

	// Rate limit section
	if v.IsSet("rate_limit.requests_per_minute") {
		v.SetDefault("rate_limit_requests_per_minute", v.GetInt("rate_limit.requests_per_minute"))
	}
	if v.IsSet("rate_limit.search_per_minute") {
		v.SetDefault("rate_limit_search_per_minute", v.GetInt("rate_limit.search_per_minute"))
	}
	if v.IsSet("rate_limit.batch_per_minute") {
		v.SetDefault("rate_limit_batch_per_minute", v.GetInt("rate_limit.batch_per_minute"))
	}
	if v.IsSet("rate_limit.system_per_minute") {
		v.SetDefault("rate_limit_system_per_minute", v.GetInt("rate_limit.system_per_minute"))
	}

	// Cache section
	if v.IsSet("cache.ttl_seconds") {
		v.SetDefault("cache_ttl_seconds", v.GetInt("cache.ttl_seconds"))
	}
	if v.IsSet("cache.sweep_interval_seconds") {
		v.SetDefault("cache_sweep_interval_seconds", v.GetInt("cache.sweep_interval_seconds"))
	}

	// Pagination section
	if v.IsSet("pagination.max_per_page") {
		v.SetDefault("max_per_page", v.GetInt("pagination.max_per_page"))
	}
	if v.IsSet("pagination.default_per_page") {
		v.SetDefault("default_per_page", v.GetInt("pagination.default_per_page"))
	}

	// Sample data
	if v.IsSet("seed.sample_data") {
		v.SetDefault("seed_sample_data", v.GetBool("seed.sample_data"))
	}

	// Base Path
	if v.IsSet("basePath") {
		v.SetDefault("basePath", v.GetString("basePath"))
	}
}

// PrintPrettyJSON takes any struct or map and prints it as pretty JSON
func PrintPrettyJSON(data interface{}) string {
	prettyJSON, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		fmt.Println("Failed to generate JSON:", err)
		return ""
	}
	return string(prettyJSON)
}
