package contract

import (
	"fmt"
	"maps"
	"strings"

	"github.com/mmmkit/decomp/internal/payload"
	"github.com/mmmkit/decomp/schema"
	"github.com/rs/zerolog"
)

// Default values for configuration.
const (
	DefaultPrecision = 2
	MaxPrecision     = 6
	DefaultLogLevel  = "warn"
)

// Config holds the runtime configuration for the engine.
// This struct remains the "final, validated" config.
type Config struct {
	// Targets are the positional arguments: payload paths for series and
	// compare commands, series keys or variable names for colors and suggest.
	Targets []string

	Group       string // Drilldown group, required by the drilldown command
	AsVariables bool   // Colour keys as variables of one group instead of as groups

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	ColorsFile     string
	ColorOverrides map[string]string

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	LogLevel    zerolog.Level
	MetricsFile string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	Targets []string

	// --- Fields from rootCmd.PersistentFlags() ---
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	ColorsFile       string `mapstructure:"colors-file"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	LogLevel         string `mapstructure:"log-level"`
	MetricsFile      string `mapstructure:"metrics-file"`

	// --- Fields from drilldownCmd.Flags() ---
	Group string `mapstructure:"group"`

	// --- Fields from colorsCmd.Flags() ---
	Variables bool `mapstructure:"variables"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Targets != nil {
		clone.Targets = make([]string, len(c.Targets))
		copy(clone.Targets, c.Targets)
	}
	if c.ColorOverrides != nil {
		clone.ColorOverrides = make(map[string]string, len(c.ColorOverrides))
		maps.Copy(clone.ColorOverrides, c.ColorOverrides)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := processColorOverrides(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' with host:port")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ParseHistoryBackend normalizes a backend name, treating empty as none.
func ParseHistoryBackend(s string) (schema.DatabaseBackend, error) {
	if strings.TrimSpace(s) == "" {
		return schema.NoneBackend, nil
	}
	backend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", s)
	}
	return backend, nil
}

// validateBackendConfigs validates the run history backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	backend, err := ParseHistoryBackend(input.HistoryBackend)
	if err != nil {
		return err
	}
	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// validateSimpleInputs processes and validates all scalar fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.Targets = input.Targets
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Group = strings.TrimSpace(input.Group)
	cfg.AsVariables = input.Variables
	cfg.MetricsFile = input.MetricsFile

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}

	// --- 2. Log Level Validation ---
	levelStr := input.LogLevel
	if levelStr == "" {
		levelStr = DefaultLogLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return fmt.Errorf("invalid --log-level value '%s': %w", input.LogLevel, err)
	}
	cfg.LogLevel = level

	// --- 3. Width Validation ---
	if input.Width < 0 {
		return fmt.Errorf("width must not be negative (received %d)", input.Width)
	}

	return nil
}

// processColorOverrides loads the optional colour override file.
func processColorOverrides(cfg *Config, input *ConfigRawInput) error {
	cfg.ColorsFile = strings.TrimSpace(input.ColorsFile)
	if cfg.ColorsFile == "" {
		return nil
	}
	overrides, err := payload.LoadColorOverrides(cfg.ColorsFile)
	if err != nil {
		return fmt.Errorf("invalid --colors-file: %w", err)
	}
	cfg.ColorOverrides = overrides
	return nil
}
