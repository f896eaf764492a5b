package pipeline

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/sartorproj/gosax/arma"
	"github.com/sartorproj/gosax/paa"
	"github.com/sartorproj/gosax/sax"
	"github.com/sartorproj/gosax/timeseries"
)

// Environment variables that override the configured source.
const (
	EnvLength = "GOSAX_LENGTH"
	EnvSeed   = "GOSAX_SEED"
)

// Config holds the source settings of a pipeline and the sizes a caller
// starts from when none are given.
type Config struct {
	Length       int          `yaml:"length"`        // generated series length (default: 100)
	Seed         uint64       `yaml:"seed"`          // generator seed (default: 12345)
	Process      arma.Process `yaml:"process"`       // generating process (default: ARMA(1,1), phi 0, theta 0.5)
	FrameSize    int          `yaml:"frame_size"`    // default frame size (default: 4)
	AlphabetSize int          `yaml:"alphabet_size"` // default alphabet size (default: 5)
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() *Config {
	return &Config{
		Length:       arma.DefaultLength,
		Seed:         arma.DefaultSeed,
		Process:      arma.Default(),
		FrameSize:    4,
		AlphabetSize: 5,
	}
}

func (c *Config) clone() Config {
	out := *c
	out.Process.AR = slices.Clone(c.Process.AR)
	out.Process.MA = slices.Clone(c.Process.MA)
	return out
}

// Params returns the configured default sizes.
func (c *Config) Params() Params {
	return Params{FrameSize: c.FrameSize, AlphabetSize: c.AlphabetSize}
}

// Validate checks the configuration for consistency. The default sizes are
// only checked to be positive: their upper bound is the length of the series
// they end up applied to, which may be a supplied series rather than Length.
func (c *Config) Validate() error {
	if err := timeseries.CheckMin("length", c.Length, 1); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Process.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := timeseries.CheckMin(paa.FrameSizeName, c.FrameSize, 1); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := timeseries.CheckMin(sax.AlphabetSizeName, c.AlphabetSize, 1); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ParseConfig reads a YAML configuration. Keys that are absent keep their
// default values.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: invalid YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	return ParseConfig(data)
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ApplyEnv overrides Length and Seed from GOSAX_LENGTH and GOSAX_SEED as
// reported by lookup (usually os.LookupEnv). A set but unparsable variable
// is an error; it never falls back to the configured value.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLength); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvLength, v, err)
		}
		c.Length = n
	}
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvSeed, v, err)
		}
		c.Seed = seed
	}
	return c.Validate()
}
