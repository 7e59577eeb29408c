package config

import (
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"cardiodash/domain/cardio"
	"cardiodash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data      DataConfig
	Server    ServerConfig
	Filters   FilterConfig
	Profiling ProfilingConfig
	Log       LogConfig
}

// DataConfig locates and describes the survey source
type DataConfig struct {
	File          string
	Sheet         string
	Delimiter     rune
	RecentCheckup string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	APIPort string
	GinMode string
}

// FilterConfig holds the initial filter selection. A nil slice means "all values".
type FilterConfig struct {
	AgeCategory    []string
	Sex            []string
	SmokingHistory []string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	dataConfig, err := loadDataConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load data configuration")
	}

	config := &Config{
		Data:      *dataConfig,
		Server:    *loadServerConfig(),
		Filters:   *loadFilterConfig(),
		Profiling: *loadProfilingConfig(),
		Log:       LogConfig{Level: getEnvOrDefault("LOG_LEVEL", "INFO")},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func loadDataConfig() (*DataConfig, error) {
	delimiter := getEnvOrDefault("DATA_DELIMITER", ",")
	if delimiter == `\t` {
		delimiter = "\t"
	}
	r, size := utf8.DecodeRuneInString(delimiter)
	if size != len(delimiter) || r == utf8.RuneError {
		return nil, errors.ConfigInvalid("DATA_DELIMITER must be a single character")
	}

	return &DataConfig{
		File:          os.Getenv("DATA_FILE"),
		Sheet:         getEnvOrDefault("DATA_SHEET", "Sheet1"),
		Delimiter:     r,
		RecentCheckup: getEnvOrDefault("RECENT_CHECKUP_VALUE", cardio.DefaultRecentCheckup),
	}, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		APIPort: getEnvOrDefault("API_PORT", "8081"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),
	}
}

func loadFilterConfig() *FilterConfig {
	return &FilterConfig{
		AgeCategory:    getEnvListOrNil("AGE_CATEGORY_FILTER"),
		Sex:            getEnvListOrNil("SEX_FILTER"),
		SmokingHistory: getEnvListOrNil("SMOKING_HISTORY_FILTER"),
	}
}

func loadProfilingConfig() *ProfilingConfig {
	return &ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	if config.Data.File == "" {
		return errors.ConfigInvalid("DATA_FILE is required")
	}
	for name, port := range map[string]string{"PORT": config.Server.Port, "API_PORT": config.Server.APIPort, "PPROF_PORT": config.Profiling.Port} {
		if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
			return errors.ConfigInvalid(name + " must be a TCP port number")
		}
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvListOrNil splits a comma separated value, trimming blanks. Unset or empty yields nil.
func getEnvListOrNil(key string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
