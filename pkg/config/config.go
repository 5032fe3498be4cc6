// Package config loads luthier's defaults for the CLI and the HTTP server.
//
// Config files are TOML or YAML, chosen by extension. A missing file is not
// an error: every field has a default, and a partial file only overrides the
// fields it sets.
//
// Lookup order (first existing file wins):
//  1. the --config flag
//  2. $LUTHIER_CONFIG
//  3. ./luthier.toml, ./luthier.yaml
//  4. $XDG_CONFIG_HOME/luthier/config.toml
//  5. ~/.config/luthier/config.toml
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/luthier/pkg/errors"
	"github.com/matzehuels/luthier/pkg/ruler"
	"github.com/matzehuels/luthier/pkg/spacing"
)

// Config is the effective configuration.
type Config struct {
	Ruler     RulerConfig     `toml:"ruler" yaml:"ruler" json:"ruler"`
	Spacing   SpacingConfig   `toml:"spacing" yaml:"spacing" json:"spacing"`
	Fretboard FretboardConfig `toml:"fretboard" yaml:"fretboard" json:"fretboard"`
	Server    ServerConfig    `toml:"server" yaml:"server" json:"server"`
	Output    OutputConfig    `toml:"output" yaml:"output" json:"output"`
}

// RulerConfig controls fraction rendering.
type RulerConfig struct {
	Finest int64 `toml:"finest" yaml:"finest" json:"finest"`
	Snap   bool  `toml:"snap" yaml:"snap" json:"snap"`
}

// SpacingConfig holds nut layout defaults. Lengths are in inches.
type SpacingConfig struct {
	// EdgeDistance is a pointer so an explicit 0 survives applyDefaults.
	EdgeDistance *float64  `toml:"edge_distance" yaml:"edge_distance" json:"edge_distance"`
	Flush        bool      `toml:"flush" yaml:"flush" json:"flush"`
	NutWidth     float64   `toml:"nut_width" yaml:"nut_width" json:"nut_width"`
	Gauges       []float64 `toml:"gauges" yaml:"gauges" json:"gauges"`
}

// FretboardConfig holds fretboard defaults. Lengths are in inches.
type FretboardConfig struct {
	ScaleLength float64 `toml:"scale_length" yaml:"scale_length" json:"scale_length"`
	Frets       int     `toml:"frets" yaml:"frets" json:"frets"`
	StartRadius float64 `toml:"start_radius" yaml:"start_radius" json:"start_radius"`
	EndRadius   float64 `toml:"end_radius" yaml:"end_radius" json:"end_radius"`
}

// ServerConfig configures `luthier serve`.
type ServerConfig struct {
	Addr string `toml:"addr" yaml:"addr" json:"addr"`
}

// OutputConfig selects the default output format of the CLI.
type OutputConfig struct {
	Format string `toml:"format" yaml:"format" json:"format"`
}

// Defaults.
const (
	DefaultNutWidth    = 1.6875
	DefaultScaleLength = 25.5
	DefaultFrets       = 22
	DefaultStartRadius = 10.0
	DefaultEndRadius   = 16.0
	DefaultAddr        = ":8080"
	DefaultFormat      = "text"
)

// DefaultGauges is a common light electric set, low to high.
var DefaultGauges = []float64{0.046, 0.036, 0.026, 0.017, 0.013, 0.010}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	edge := spacing.DefaultEdgeDistance
	return &Config{
		Ruler: RulerConfig{Finest: ruler.DefaultFinest},
		Spacing: SpacingConfig{
			EdgeDistance: &edge,
			NutWidth:     DefaultNutWidth,
			Gauges:       append([]float64(nil), DefaultGauges...),
		},
		Fretboard: FretboardConfig{
			ScaleLength: DefaultScaleLength,
			Frets:       DefaultFrets,
			StartRadius: DefaultStartRadius,
			EndRadius:   DefaultEndRadius,
		},
		Server: ServerConfig{Addr: DefaultAddr},
		Output: OutputConfig{Format: DefaultFormat},
	}
}

// Load reads the config at path, or the first file found by FindConfigPath
// when path is empty. It returns the path actually read, which is empty when
// defaults were used.
func Load(path string) (*Config, string, error) {
	if path == "" {
		path = FindConfigPath()
	}
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath reads, defaults and validates the config at path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var cfg Config
	if isYAML(path) {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, path, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}
	return &cfg, path, nil
}

// Save writes the config to path, creating its directory. The encoding
// follows the extension.
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create config dir")
	}
	data, err := c.Encode(isYAML(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write config %s", path)
	}
	return nil
}

// Encode renders the config as YAML, or TOML when asYAML is false.
func (c *Config) Encode(asYAML bool) ([]byte, error) {
	if asYAML {
		data, err := yaml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal config")
		}
		return data, nil
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal config")
	}
	return buf.Bytes(), nil
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Ruler.Finest == 0 {
		c.Ruler.Finest = d.Ruler.Finest
	}
	if c.Spacing.EdgeDistance == nil {
		c.Spacing.EdgeDistance = d.Spacing.EdgeDistance
	}
	if c.Spacing.NutWidth == 0 {
		c.Spacing.NutWidth = d.Spacing.NutWidth
	}
	if len(c.Spacing.Gauges) == 0 {
		c.Spacing.Gauges = d.Spacing.Gauges
	}
	if c.Fretboard.ScaleLength == 0 {
		c.Fretboard.ScaleLength = d.Fretboard.ScaleLength
	}
	if c.Fretboard.Frets == 0 {
		c.Fretboard.Frets = d.Fretboard.Frets
	}
	if c.Fretboard.StartRadius == 0 {
		c.Fretboard.StartRadius = d.Fretboard.StartRadius
	}
	if c.Fretboard.EndRadius == 0 {
		c.Fretboard.EndRadius = d.Fretboard.EndRadius
	}
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Output.Format == "" {
		c.Output.Format = d.Output.Format
	}
}

// Validate rejects values no command could use.
func (c *Config) Validate() error {
	switch {
	case c.Ruler.Finest < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "ruler.finest must be at least 1, got %d", c.Ruler.Finest)
	case c.Spacing.EdgeDistance != nil && *c.Spacing.EdgeDistance < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "spacing.edge_distance cannot be negative")
	case c.Spacing.NutWidth < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "spacing.nut_width cannot be negative")
	case c.Fretboard.ScaleLength < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "fretboard.scale_length cannot be negative")
	case c.Fretboard.Frets < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "fretboard.frets cannot be negative")
	}
	for _, g := range c.Spacing.Gauges {
		if g <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "spacing.gauges must all be positive, got %v", g)
		}
	}
	switch c.Output.Format {
	case "", "text", "json", "toml", "yaml":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "output.format %q is not one of text, json, toml, yaml", c.Output.Format)
	}
	return nil
}

// RulerOptions converts the ruler section for pkg/ruler.
func (c *Config) RulerOptions() ruler.Options {
	opts := ruler.Options{Finest: c.Ruler.Finest}
	if c.Ruler.Snap {
		opts.Policy = ruler.PolicySnap
	}
	return opts
}

// SpacingOptions converts the spacing section for pkg/spacing.
func (c *Config) SpacingOptions() spacing.Options {
	opts := spacing.DefaultOptions()
	if c.Spacing.EdgeDistance != nil {
		opts.EdgeDistance = *c.Spacing.EdgeDistance
	}
	opts.EdgeFlush = c.Spacing.Flush
	return opts
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
