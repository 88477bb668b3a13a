package lumen

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/wayneeseguin/lumen/pkg/formatters"
	"gopkg.in/yaml.v3"
)

const (
	// MaxLineLength bounds a formatted line, newline included. Longer
	// messages are truncated; the line buffer never grows. The message is
	// still rendered in full by fmt before truncation, so a call with very
	// large arguments allocates in proportion to them.
	MaxLineLength = formatters.DefaultMaxLineLength

	// MaxPathLength bounds the log file path. Paths of MaxPathLength bytes
	// or more are rejected.
	MaxPathLength = 256
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLevel       = "LUMEN_LEVEL"
	EnvOutputs     = "LUMEN_OUTPUTS"
	EnvFile        = "LUMEN_FILE"
	EnvColors      = "LUMEN_COLORS"
	EnvThreadSafe  = "LUMEN_THREAD_SAFE"
	EnvProcessSafe = "LUMEN_PROCESS_SAFE"
)

// Config holds the logger settings that Init accepts and the Set* methods
// change at runtime.
type Config struct {
	Level         Level  // Minimum level that is emitted
	Outputs       Output // Active sinks
	FilePath      string // Log file; empty means no file
	ColorsEnabled bool   // Color console lines on terminals
	ThreadSafe    bool   // Serialize concurrent callers

	// ProcessSafe additionally holds an advisory file lock around each
	// file write so that several processes can share one log file.
	ProcessSafe bool
}

// DefaultConfig returns the configuration a new logger starts with:
// INFO level, console output, colors on, thread-safe.
//
// Example:
//
//	cfg := lumen.DefaultConfig()
//	cfg.Outputs |= lumen.OutputFile
//	cfg.FilePath = "app.log"
//	if err := logger.Init(&cfg); err != nil {
//		log.Fatal(err)
//	}
func DefaultConfig() Config {
	return Config{
		Level:         LevelInfo,
		Outputs:       OutputConsole,
		FilePath:      "",
		ColorsEnabled: true,
		ThreadSafe:    true,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if !c.Level.Valid() {
		return errors.Errorf("invalid level %d", int(c.Level))
	}
	if c.Outputs&^(OutputConsole|OutputFile) != 0 {
		return errors.Errorf("invalid outputs %#x", uint8(c.Outputs))
	}
	if len(c.FilePath) >= MaxPathLength {
		return errors.Errorf("file path longer than %d bytes", MaxPathLength-1)
	}
	return nil
}

// fileConfig is the YAML shape of a configuration file. Absent keys keep
// their defaults.
type fileConfig struct {
	Level       *string  `yaml:"level"`
	Outputs     []string `yaml:"outputs"`
	File        *string  `yaml:"file"`
	Colors      *bool    `yaml:"colors"`
	ThreadSafe  *bool    `yaml:"thread_safe"`
	ProcessSafe *bool    `yaml:"process_safe"`
}

// LoadConfigFile reads a YAML configuration such as
//
//	level: debug
//	outputs: [console, file]
//	file: /var/log/app.log
//	colors: false
//	thread_safe: true
//
// on top of DefaultConfig.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML configuration data on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}

	cfg := DefaultConfig()
	if fc.Level != nil {
		level, err := ParseLevel(*fc.Level)
		if err != nil {
			return Config{}, err
		}
		cfg.Level = level
	}
	if fc.Outputs != nil {
		cfg.Outputs = OutputNone
		for _, name := range fc.Outputs {
			o, err := ParseOutputs(name)
			if err != nil {
				return Config{}, err
			}
			cfg.Outputs |= o
		}
	}
	if fc.File != nil {
		cfg.FilePath = *fc.File
	}
	if fc.Colors != nil {
		cfg.ColorsEnabled = *fc.Colors
	}
	if fc.ThreadSafe != nil {
		cfg.ThreadSafe = *fc.ThreadSafe
	}
	if fc.ProcessSafe != nil {
		cfg.ProcessSafe = *fc.ProcessSafe
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigFromEnv applies LUMEN_* environment overrides to base.
func ConfigFromEnv(base Config) (Config, error) {
	cfg := base

	if v, ok := os.LookupEnv(EnvLevel); ok {
		level, err := ParseLevel(v)
		if err != nil {
			return base, errors.Wrap(err, EnvLevel)
		}
		cfg.Level = level
	}
	if v, ok := os.LookupEnv(EnvOutputs); ok {
		outputs, err := ParseOutputs(v)
		if err != nil {
			return base, errors.Wrap(err, EnvOutputs)
		}
		cfg.Outputs = outputs
	}
	if v, ok := os.LookupEnv(EnvFile); ok {
		cfg.FilePath = v
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{EnvColors, &cfg.ColorsEnabled},
		{EnvThreadSafe, &cfg.ThreadSafe},
		{EnvProcessSafe, &cfg.ProcessSafe},
	}
	for _, b := range bools {
		v, ok := os.LookupEnv(b.name)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return base, errors.Wrap(err, b.name)
		}
		*b.dst = parsed
	}

	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}
