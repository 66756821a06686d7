// Package config loads application configuration: built-in defaults,
// overlaid by a YAML file, overlaid by NUCHART_-prefixed environment
// variables; the environment wins.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the environment variable prefix, e.g. NUCHART_SERVER_PORT.
const EnvPrefix = "NUCHART"

// DefaultConfigFile is looked up relative to the working directory.
const DefaultConfigFile = "nuchart.yaml"

// Config represents the complete application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server" envconfig:"SERVER"`
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Paths      PathsConfig      `yaml:"paths" envconfig:"PATHS"`
	Derivation DerivationConfig `yaml:"derivation" envconfig:"DERIVATION"`
	Pipeline   PipelineConfig   `yaml:"pipeline" envconfig:"PIPELINE"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`

	RateLimit RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS"`
	Burst   int     `yaml:"burst" envconfig:"BURST"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains the input and output file locations.
type PathsConfig struct {
	TableFile    string `yaml:"table_file" envconfig:"TABLE_FILE" validate:"required"`
	ElementsFile string `yaml:"elements_file" envconfig:"ELEMENTS_FILE" validate:"required"`
	OutputDir    string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
}

// DerivationConfig selects which separation energy a derivation pass
// produces; only one is active at a time.
type DerivationConfig struct {
	Kind string `yaml:"kind" envconfig:"KIND" validate:"oneof=s2n s2p"`
}

// PipelineConfig tunes the parse stage. Records are independent, so the
// parse step may fan out over workers before the serialized grid fold.
type PipelineConfig struct {
	Workers int `yaml:"workers" envconfig:"WORKERS" validate:"min=1,max=64"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     100,
				Burst:   50,
			},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: "logs/nuchart.log",
		},
		Paths: PathsConfig{
			TableFile:    "nubtab03.asc",
			ElementsFile: "periodic.dat",
			OutputDir:    "out",
		},
		Derivation: DerivationConfig{Kind: "s2n"},
		Pipeline:   PipelineConfig{Workers: 1},
	}
}

// Load reads DefaultConfigFile if present, then overlays environment
// variables, then validates.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom is Load with an explicit config file path. A missing file is
// not an error; the defaults cover a file-less run.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Only variables actually set in the environment override; defaults
	// and file values survive otherwise.
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}
