package app

import (
	"fmt"
	"os"
)

// ReportFormatYAML is the only supported machine-readable report format.
const ReportFormatYAML = "yaml"

const defaultFileCount = 3

// Config captures runtime parameters for a demonstration run.
type Config struct {
	Demos         []string
	TempDirBase   string
	FileCount     int
	Interpreter   string
	ReportFormat  string
	KeepArtifacts bool
	Debug         bool
	Version       string
}

// ConfigOption mutates a Config during construction.
type ConfigOption func(*Config)

// NewConfig creates a Config with defaults and applies provided options.
func NewConfig(demos []string, opts ...ConfigOption) (Config, error) {
	cfg := Config{
		Demos:       append([]string{}, demos...),
		TempDirBase: os.TempDir(),
		FileCount:   defaultFileCount,
		Interpreter: "/bin/sh",
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.FileCount < 1 {
		return Config{}, fmt.Errorf("file count must be positive, got %d", cfg.FileCount)
	}

	if cfg.ReportFormat != "" && cfg.ReportFormat != ReportFormatYAML {
		return Config{}, fmt.Errorf("unsupported report format %q", cfg.ReportFormat)
	}

	return cfg, nil
}

// WithTempDirBase overrides the base directory for temporary artifacts.
func WithTempDirBase(path string) ConfigOption {
	return func(cfg *Config) {
		if path != "" {
			cfg.TempDirBase = path
		}
	}
}

// WithFileCount sets the number of files generated in the temp directory demo.
func WithFileCount(count int) ConfigOption {
	return func(cfg *Config) {
		cfg.FileCount = count
	}
}

// WithInterpreter overrides the interpreter used to spawn the temporary script.
func WithInterpreter(path string) ConfigOption {
	return func(cfg *Config) {
		if path != "" {
			cfg.Interpreter = path
		}
	}
}

// WithReportFormat enables a machine-readable report after the run.
func WithReportFormat(format string) ConfigOption {
	return func(cfg *Config) {
		cfg.ReportFormat = format
	}
}

// WithKeepArtifacts disables deferred cleanups so artifacts survive for inspection.
func WithKeepArtifacts(enabled bool) ConfigOption {
	return func(cfg *Config) {
		cfg.KeepArtifacts = enabled
	}
}

// WithDebug toggles verbose logging.
func WithDebug(enabled bool) ConfigOption {
	return func(cfg *Config) {
		cfg.Debug = enabled
	}
}

// WithVersion sets the application version used in log output.
func WithVersion(version string) ConfigOption {
	return func(cfg *Config) {
		cfg.Version = version
	}
}
