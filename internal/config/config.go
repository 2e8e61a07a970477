package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Catalog struct {
		CoursesPath  string `yaml:"courses_path" env:"CATALOG_COURSES_PATH"`
		CollegesPath string `yaml:"colleges_path" env:"CATALOG_COLLEGES_PATH"`
	} `yaml:"catalog"`

	Planner struct {
		MinCredits int `yaml:"min_credits" env:"PLANNER_MIN_CREDITS"`
		MaxCredits int `yaml:"max_credits" env:"PLANNER_MAX_CREDITS"`
		MaxCourses int `yaml:"max_courses" env:"PLANNER_MAX_COURSES"`
		Semesters  int `yaml:"semesters" env:"PLANNER_SEMESTERS"`
	} `yaml:"planner"`

	Gemini struct {
		APIKey  string `yaml:"api_key" env:"GEMINI_API_KEY"`
		Model   string `yaml:"model" env:"GEMINI_MODEL"`
		Timeout string `yaml:"timeout" env:"GEMINI_TIMEOUT"`
	} `yaml:"gemini"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Catalog defaults
	config.Catalog.CoursesPath = "data/courses.json"
	config.Catalog.CollegesPath = "data/colleges.json"

	// Planner defaults: a 12-18 credit band over 8 semesters
	config.Planner.MinCredits = 12
	config.Planner.MaxCredits = 18
	config.Planner.MaxCourses = 6
	config.Planner.Semesters = 8

	// Gemini defaults. An empty API key selects heuristic narration.
	config.Gemini.Model = "gemini-1.5-flash"
	config.Gemini.Timeout = "10s"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	// Recursively process the config structure and look for env tags
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Catalog.CoursesPath == "" {
		return fmt.Errorf("catalog courses path is required")
	}

	if config.Catalog.CollegesPath == "" {
		return fmt.Errorf("catalog colleges path is required")
	}

	if config.Planner.MinCredits <= 0 || config.Planner.MaxCredits < config.Planner.MinCredits {
		return fmt.Errorf("planner credit band %d-%d is invalid", config.Planner.MinCredits, config.Planner.MaxCredits)
	}

	if config.Planner.MaxCourses <= 0 {
		return fmt.Errorf("planner max courses must be positive")
	}

	if config.Planner.Semesters <= 0 {
		return fmt.Errorf("planner semester count must be positive")
	}

	if _, err := time.ParseDuration(config.Gemini.Timeout); err != nil {
		return fmt.Errorf("invalid gemini timeout format: %w", err)
	}

	return nil
}

// GeminiTimeout returns the parsed narration call timeout. Validation
// guarantees the value parses.
func (c *Config) GeminiTimeout() time.Duration {
	d, err := time.ParseDuration(c.Gemini.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// NarrationEnabled reports whether the external generation service is
// configured. Absence of a key is a mode switch, not an error.
func (c *Config) NarrationEnabled() bool {
	return c.Gemini.APIKey != ""
}
