package config

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
)

// Environment selects where the task database lives
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// ExportFormats lists the formats accepted by the export command
var ExportFormats = []string{"csv", "yaml", "pdf"}

// Config holds all configuration options for the task manager
type Config struct {
	Database    DatabaseConfig
	Validation  ValidationConfig
	Display     DisplayConfig
	Application ApplicationConfig
	Export      ExportConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string `env:"TD_DB_DIR"`
	Filename       string `env:"TD_DB_FILENAME" env-default:"tasks.db"`
	DirPermissions string `env:"TD_DB_DIR_PERMISSIONS" env-default:"0755"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMinLength int `env:"TD_VALIDATION_TITLE_MIN" env-default:"1"`
	TitleMaxLength int `env:"TD_VALIDATION_TITLE_MAX" env-default:"255"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TitleWidth int `env:"TD_DISPLAY_TITLE_WIDTH" env-default:"20"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose  bool        `env:"TD_APP_VERBOSE" env-default:"false"`
	LogLevel string      `env:"TD_LOG_LEVEL" env-default:"warn"`
	Env      Environment `env:"TD_ENV" env-default:"production"`
}

// ExportConfig holds export command defaults
type ExportConfig struct {
	DefaultFormat string `env:"TD_EXPORT_DEFAULT_FORMAT" env-default:"csv"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Dir:            DefaultDatabaseDir(),
			Filename:       "tasks.db",
			DirPermissions: "0755",
		},
		Validation: ValidationConfig{
			TitleMinLength: 1,
			TitleMaxLength: 255,
		},
		Display: DisplayConfig{
			TitleWidth: 20,
		},
		Application: ApplicationConfig{
			Verbose:  false,
			LogLevel: "warn",
			Env:      Production,
		},
		Export: ExportConfig{
			DefaultFormat: "csv",
		},
	}
}

// DefaultDatabaseDir returns ~/.td, or .td when the home directory is unknown
func DefaultDatabaseDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".td"
	}
	return filepath.Join(homeDir, ".td")
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetDirPermissions parses the octal directory mode
func (c *Config) GetDirPermissions() (os.FileMode, error) {
	perms, err := strconv.ParseUint(c.Database.DirPermissions, 8, 32)
	if err != nil {
		return 0, err
	}
	return os.FileMode(perms), nil
}

// LoadFromEnvironment loads configuration from TD_* environment variables
func (c *Config) LoadFromEnvironment() error {
	if err := cleanenv.ReadEnv(c); err != nil {
		return &ConfigError{Field: "environment", Message: err.Error()}
	}
	if c.Database.Dir == "" {
		c.Database.Dir = DefaultDatabaseDir()
	}
	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if _, err := c.GetDirPermissions(); err != nil {
		return &ConfigError{Field: "database.dir_permissions", Message: "directory permissions must be an octal mode such as 0755"}
	}

	// Validate validation configuration
	if c.Validation.TitleMinLength < 1 {
		return &ConfigError{Field: "validation.title_min_length", Message: "title minimum length must be at least 1"}
	}
	if c.Validation.TitleMaxLength < c.Validation.TitleMinLength {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be greater than minimum length"}
	}

	// Validate display configuration
	if c.Display.TitleWidth < 5 {
		return &ConfigError{Field: "display.title_width", Message: "title width must be at least 5"}
	}

	// Validate application configuration
	if _, err := zerolog.ParseLevel(c.Application.LogLevel); err != nil {
		return &ConfigError{Field: "application.log_level", Message: "unknown log level " + strconv.Quote(c.Application.LogLevel)}
	}
	switch c.Application.Env {
	case Development, Testing, Production:
	default:
		return &ConfigError{Field: "application.env", Message: "environment must be development, testing or production"}
	}

	// Validate export configuration
	if !slices.Contains(ExportFormats, c.Export.DefaultFormat) {
		return &ConfigError{Field: "export.default_format", Message: "export format must be csv, yaml or pdf"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
