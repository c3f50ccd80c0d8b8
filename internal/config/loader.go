package config

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Command line flags are applied later with ApplyOverrides and Validate
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides. Nil fields are left alone.
type ConfigOverrides struct {
	// Database overrides
	DBDir      *string
	DBFilename *string

	// Validation overrides
	TitleMinLength *int
	TitleMaxLength *int

	// Display overrides
	TitleWidth *int

	// Application overrides
	Verbose  *bool
	LogLevel *string
	Env      *string

	// Export overrides
	ExportFormat *string
}

// ApplyOverrides applies command line overrides to the configuration. A nil overrides is a no-op.
func (c *Config) ApplyOverrides(overrides *ConfigOverrides) {
	if overrides == nil {
		return
	}

	if overrides.DBDir != nil {
		c.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		c.Database.Filename = *overrides.DBFilename
	}

	if overrides.TitleMinLength != nil {
		c.Validation.TitleMinLength = *overrides.TitleMinLength
	}
	if overrides.TitleMaxLength != nil {
		c.Validation.TitleMaxLength = *overrides.TitleMaxLength
	}

	if overrides.TitleWidth != nil {
		c.Display.TitleWidth = *overrides.TitleWidth
	}

	if overrides.Verbose != nil {
		c.Application.Verbose = *overrides.Verbose
	}
	if overrides.LogLevel != nil {
		c.Application.LogLevel = *overrides.LogLevel
	}
	if overrides.Env != nil {
		c.Application.Env = Environment(*overrides.Env)
	}

	if overrides.ExportFormat != nil {
		c.Export.DefaultFormat = *overrides.ExportFormat
	}
}
