// Package config provides application configuration.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by [Load].
const EnvPrefix = "NUMBAND"

// Default configuration values.
const (
	DefaultLogLevel    = "info"
	DefaultLogEncoding = LogEncodingConsole
	DefaultOutput      = OutputText
)

// LogEncoding is the log output encoding.
type LogEncoding string

// LogEncoding values.
const (
	LogEncodingConsole LogEncoding = "console"
	LogEncodingJSON    LogEncoding = "json"
)

// Output is the format command results are printed in.
type Output string

// Output values.
const (
	OutputText Output = "text"
	OutputYAML Output = "yaml"
)

// EnvConfig holds all environment-based configuration.
// Field names map to environment variables with the NUMBAND_ prefix removed.
type EnvConfig struct {
	// LogLevel is the minimum enabled log level.
	// Env: LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogEncoding is the log encoding (console or json).
	// Env: LOG_ENCODING (default: console)
	LogEncoding string `envconfig:"LOG_ENCODING" default:"console"`

	// Output is the result format (text or yaml).
	// Env: OUTPUT (default: text)
	Output string `envconfig:"OUTPUT" default:"text"`
}

// Config is the validated application configuration.
type Config struct {
	logLevel    string
	logEncoding LogEncoding
	output      Output
}

// NewConfig creates a Config with defaults.
func NewConfig() Config {
	return Config{
		logLevel:    DefaultLogLevel,
		logEncoding: DefaultLogEncoding,
		output:      DefaultOutput,
	}
}

// LogLevel returns the minimum enabled log level.
func (c Config) LogLevel() string { return c.logLevel }

// LogEncoding returns the log encoding.
func (c Config) LogEncoding() LogEncoding { return c.logEncoding }

// Output returns the result format.
func (c Config) Output() Output { return c.output }

// WithLogLevel returns a new config with the specified log level.
func (c Config) WithLogLevel(level string) Config {
	c.logLevel = strings.ToLower(level)
	return c
}

// WithLogEncoding returns a new config with the specified log encoding.
func (c Config) WithLogEncoding(encoding LogEncoding) Config {
	c.logEncoding = encoding
	return c
}

// WithOutput returns a new config with the specified output format.
func (c Config) WithOutput(output Output) Config {
	c.output = output
	return c
}

// Validate checks that enumerated settings hold known values.
func (c Config) Validate() error {
	switch c.logEncoding {
	case LogEncodingConsole, LogEncodingJSON:
	default:
		return errors.Errorf("unknown log encoding %q", c.logEncoding)
	}

	switch c.output {
	case OutputText, OutputYAML:
	default:
		return errors.Errorf("unknown output format %q", c.output)
	}

	return nil
}

// ToConfig converts the environment configuration into a Config.
func (e EnvConfig) ToConfig() Config {
	return NewConfig().
		WithLogLevel(e.LogLevel).
		WithLogEncoding(LogEncoding(strings.ToLower(e.LogEncoding))).
		WithOutput(Output(strings.ToLower(e.Output)))
}

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads from ".env" in the current directory.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(path)
}

// LoadFromEnv reads the NUMBAND_ environment variables.
func LoadFromEnv() (Config, error) {
	var env EnvConfig

	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return Config{}, errors.Wrap(err, "process environment")
	}

	cfg := env.ToConfig()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load loads the .env file at envFile, then the environment.
func Load(envFile string) (Config, error) {
	if err := LoadDotEnv(envFile); err != nil {
		return Config{}, errors.Wrapf(err, "load %s", envFile)
	}

	return LoadFromEnv()
}
