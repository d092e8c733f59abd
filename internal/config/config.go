package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/densca/internal/logging"
	"github.com/aretw0/densca/pkg/domain"
	"github.com/aretw0/densca/pkg/verify"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file read when none is given explicitly.
const DefaultPath = "densca.yaml"

// Config holds the settings of a verification run.
type Config struct {
	MinSize     int    `mapstructure:"min_size" yaml:"min_size" json:"min_size"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size" json:"max_size"`
	Workers     int    `mapstructure:"workers" yaml:"workers" json:"workers"`
	ChunkSize   int    `mapstructure:"chunk_size" yaml:"chunk_size" json:"chunk_size"`
	FullRange   bool   `mapstructure:"full_range" yaml:"full_range" json:"full_range"`
	Progress    bool   `mapstructure:"progress" yaml:"progress" json:"progress"`
	MetricsAddr string `mapstructure:"metrics_addr" yaml:"metrics_addr" json:"metrics_addr"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		MinSize:   verify.DefaultMinSize,
		MaxSize:   verify.DefaultMaxSize,
		ChunkSize: verify.DefaultChunkSize,
		Progress:  true,
		LogLevel:  "info",
	}
}

// Load reads a configuration file (YAML or JSON) on top of the defaults.
// A missing file is not an error and yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}
	return cfg, cfg.Validate()
}

// Decode merges a generic key/value map into cfg. Values are weakly typed, so "8"
// decodes into an int field. Unknown keys are rejected.
func Decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Validate checks the size range and the log level.
func (c Config) Validate() error {
	if c.MinSize < 1 || c.MaxSize > domain.MaxSize {
		return fmt.Errorf("sizes %d..%d: %w", c.MinSize, c.MaxSize, domain.ErrSizeOutOfRange)
	}
	if c.MinSize > c.MaxSize {
		return fmt.Errorf("sizes %d..%d: %w", c.MinSize, c.MaxSize, domain.ErrInvalidRange)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// VerifierOptions translates the configuration into verifier options.
func (c Config) VerifierOptions() []verify.Option {
	return []verify.Option{
		verify.WithWorkers(c.Workers),
		verify.WithChunkSize(c.ChunkSize),
		verify.WithFullRange(c.FullRange),
	}
}
