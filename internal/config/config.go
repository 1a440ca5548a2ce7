package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOutputDir    = "Subtitles"
	DefaultCombinedName = "00-COMBINED-ALL.txt"
	DefaultLogLevel     = "info"
	DefaultDebounce     = 2 * time.Second
)

type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Scan    ScanConfig    `yaml:"scan"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Watch   WatchConfig   `yaml:"watch"`
}

type PathsConfig struct {
	Root         string `yaml:"root"`
	OutputDir    string `yaml:"output_dir"`
	CombinedName string `yaml:"combined_name"`
}

type ScanConfig struct {
	Extensions []string `yaml:"extensions"`
}

type OutputConfig struct {
	// LineEnding is auto, lf or crlf.
	LineEnding string `yaml:"line_ending"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Default returns a validated configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Load reads a YAML configuration file and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.OutputDir == "" {
		c.Paths.OutputDir = DefaultOutputDir
	}
	if strings.ContainsAny(c.Paths.OutputDir, `/\`) {
		return fmt.Errorf("paths.output_dir must be a folder name, got %q", c.Paths.OutputDir)
	}
	if c.Paths.CombinedName == "" {
		c.Paths.CombinedName = DefaultCombinedName
	}
	if len(c.Scan.Extensions) == 0 {
		c.Scan.Extensions = []string{".srt", ".vtt"}
	}

	c.Output.LineEnding = strings.ToLower(strings.TrimSpace(c.Output.LineEnding))
	switch c.Output.LineEnding {
	case "":
		c.Output.LineEnding = "auto"
	case "auto", "lf", "crlf":
	default:
		return fmt.Errorf("output.line_ending must be auto, lf or crlf, got %q", c.Output.LineEnding)
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}

	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = DefaultDebounce
	}

	return nil
}

// Terminator returns the line terminator written to every artifact.
func (c *Config) Terminator() string {
	switch c.Output.LineEnding {
	case "lf":
		return "\n"
	case "crlf":
		return "\r\n"
	}
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}
