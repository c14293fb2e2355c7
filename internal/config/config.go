package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Console struct {
		Port           string `yaml:"port" env:"CONSOLE_PORT"`
		Mode           string `yaml:"mode" env:"CONSOLE_MODE"`
		AllowedOrigins string `yaml:"allowed_origins" env:"CONSOLE_ALLOWED_ORIGINS"`
	} `yaml:"console"`

	Backend struct {
		BaseURL            string `yaml:"base_url" env:"BACKEND_BASE_URL"`
		Timeout            string `yaml:"timeout" env:"BACKEND_TIMEOUT"`
		OnlyVisibleCourses bool   `yaml:"only_visible_courses" env:"BACKEND_ONLY_VISIBLE_COURSES"`
	} `yaml:"backend"`

	Session struct {
		StorePath string `yaml:"store_path" env:"SESSION_STORE_PATH"`
	} `yaml:"session"`

	Pagination struct {
		PageSize           int `yaml:"page_size" env:"PAGE_SIZE"`
		EnrollmentPageSize int `yaml:"enrollment_page_size" env:"ENROLLMENT_PAGE_SIZE"`
	} `yaml:"pagination"`

	Filters struct {
		Timezone string `yaml:"timezone" env:"FILTER_TIMEZONE"`
	} `yaml:"filters"`

	Uploads struct {
		MaxSize int64 `yaml:"max_size" env:"UPLOAD_MAX_SIZE"`
	} `yaml:"uploads"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from defaults, an optional YAML file, an optional
// .env file next to the working directory and finally the process environment.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// .env never overrides variables already exported by the shell
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := applyEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func setDefaults(config *Config) {
	config.Console.Port = "8090"
	config.Console.Mode = "development"

	config.Backend.BaseURL = "http://localhost:8080"
	config.Backend.Timeout = "15s"

	config.Session.StorePath = defaultSessionPath()

	config.Pagination.PageSize = 5
	config.Pagination.EnrollmentPageSize = 6

	config.Filters.Timezone = "Local"

	config.Uploads.MaxSize = 10 << 20

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".courseadmin-session.yaml"
	}
	return filepath.Join(home, ".courseadmin", "session.yaml")
}

func validateConfig(config *Config) error {
	u, err := url.Parse(config.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend base_url must be an absolute URL, got %q", config.Backend.BaseURL)
	}

	if _, err := time.ParseDuration(config.Backend.Timeout); err != nil {
		return fmt.Errorf("invalid backend timeout format: %w", err)
	}

	if config.Pagination.PageSize <= 0 || config.Pagination.EnrollmentPageSize <= 0 {
		return fmt.Errorf("page sizes must be positive")
	}

	if _, err := time.LoadLocation(config.Filters.Timezone); err != nil {
		return fmt.Errorf("invalid filter timezone: %w", err)
	}

	if config.Session.StorePath == "" {
		return fmt.Errorf("session store_path is required")
	}

	if config.Uploads.MaxSize <= 0 {
		return fmt.Errorf("uploads max_size must be positive")
	}

	return nil
}

// BackendTimeout returns the per-request timeout for backend calls.
func (c *Config) BackendTimeout() time.Duration {
	d, err := time.ParseDuration(c.Backend.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// Location returns the timezone used for calendar-day filters.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Filters.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Origins returns the allowed websocket origins; empty means any origin.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.Console.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// IsProduction reports whether the console runs in release mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Console.Mode, "production") || strings.EqualFold(c.Console.Mode, "release")
}
