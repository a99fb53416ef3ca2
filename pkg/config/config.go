// Package config loads texture bake descriptions from TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/df07/go-texture-pipeline/pkg/baker"
	"github.com/df07/go-texture-pipeline/pkg/core"
	"github.com/df07/go-texture-pipeline/pkg/loaders"
	"github.com/df07/go-texture-pipeline/pkg/mapping"
	"github.com/df07/go-texture-pipeline/pkg/texture"
)

var (
	ErrUnknownTextureType = errors.New("unknown texture type")
	ErrInvalidConfig      = errors.New("invalid config")
)

// Config describes one texture, how to adjust it and how to bake it
type Config struct {
	Texture     TextureConfig            `toml:"texture"`
	Adjustments texture.AdjustmentParams `toml:"adjustments"`
	Environment *EnvironmentConfig       `toml:"environment"`
	Output      OutputConfig             `toml:"output"`

	dir string // directory relative paths are resolved against
}

// TextureConfig selects and parameterizes a texture variant
type TextureConfig struct {
	Type          string     `toml:"type"` // image, checker, blend, solid
	Path          string     `toml:"path"`
	Interpolation string     `toml:"interpolation"` // none, bilinear
	Normalmap     bool       `toml:"normalmap"`
	Color1        [4]float32 `toml:"color1"`
	Color2        [4]float32 `toml:"color2"`
	Scale         float64    `toml:"scale"`
}

// EnvironmentConfig turns the texture into a direction-indexed environment
type EnvironmentConfig struct {
	Mapping string  `toml:"mapping"` // sphere, angular, tube
	Blur    float32 `toml:"blur"`
}

// OutputConfig controls the bake
type OutputConfig struct {
	Path             string `toml:"path"`
	Width            int    `toml:"width"`
	Height           int    `toml:"height"`
	TileSize         int    `toml:"tile_size"`
	Workers          int    `toml:"workers"`
	UsePostprocessed bool   `toml:"use_postprocessed"`
}

// Default returns a config with identity adjustments and a small plane bake
func Default() *Config {
	return &Config{
		Texture: TextureConfig{
			Type:   "checker",
			Color1: [4]float32{1, 1, 1, 1},
			Color2: [4]float32{0, 0, 0, 1},
			Scale:  4,
		},
		Adjustments: texture.DefaultAdjustmentParams(),
		Output: OutputConfig{
			Width:  256,
			Height: 256,
		},
	}
}

// Load reads and validates a TOML config file. Relative texture paths are
// resolved against the file's directory.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	cfg.dir = filepath.Dir(filename)
	return cfg, nil
}

// Decode parses a TOML config on top of Default and validates it.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse config at line %d, column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config for values that cannot be built
func (c *Config) Validate() error {
	switch strings.ToLower(c.Texture.Type) {
	case "image":
		if c.Texture.Path == "" {
			return fmt.Errorf("%w: image texture needs a path", ErrInvalidConfig)
		}
	case "checker", "blend", "solid":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTextureType, c.Texture.Type)
	}

	if _, err := parseInterpolation(c.Texture.Interpolation); err != nil {
		return err
	}

	if c.Environment != nil {
		if _, err := mapping.ParseKind(c.Environment.Mapping); err != nil {
			return err
		}
		if c.Environment.Blur < 0 {
			return fmt.Errorf("%w: environment blur must not be negative", ErrInvalidConfig)
		}
	}

	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		return fmt.Errorf("%w: output size %dx%d", ErrInvalidConfig, c.Output.Width, c.Output.Height)
	}
	if c.Output.TileSize < 0 || c.Output.Workers < 0 {
		return fmt.Errorf("%w: tile size and workers must not be negative", ErrInvalidConfig)
	}
	return nil
}

func parseInterpolation(name string) (texture.Interpolation, error) {
	switch strings.ToLower(name) {
	case "", "none", "nearest":
		return texture.InterpolationNearest, nil
	case "bilinear":
		return texture.InterpolationBilinear, nil
	default:
		return 0, fmt.Errorf("%w: unknown interpolation %q", ErrInvalidConfig, name)
	}
}

func toColor(c [4]float32) core.ColorA {
	return core.NewColorA(c[0], c[1], c[2], c[3])
}

// BuildTexture constructs the raw texture variant described by the config
func (c *Config) BuildTexture() (texture.Texture, error) {
	var tex texture.Texture

	switch strings.ToLower(c.Texture.Type) {
	case "image":
		path := c.Texture.Path
		if !filepath.IsAbs(path) && c.dir != "" {
			path = filepath.Join(c.dir, path)
		}
		img, err := loaders.LoadImageTexture(path)
		if err != nil {
			return nil, err
		}
		interp, err := parseInterpolation(c.Texture.Interpolation)
		if err != nil {
			return nil, err
		}
		img.Interpolation = interp
		img.Normalmap = c.Texture.Normalmap
		tex = img
	case "checker":
		tex = texture.NewChecker(toColor(c.Texture.Color1), toColor(c.Texture.Color2), c.Texture.Scale)
	case "blend":
		tex = texture.NewBlend(toColor(c.Texture.Color1), toColor(c.Texture.Color2))
	case "solid":
		tex = texture.NewSolid(toColor(c.Texture.Color1))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTextureType, c.Texture.Type)
	}

	if c.Environment != nil {
		kind, err := mapping.ParseKind(c.Environment.Mapping)
		if err != nil {
			return nil, err
		}
		tex = texture.NewEnvironment(tex, kind)
	}
	return tex, nil
}

// BuildSampler constructs the texture, applies the adjustments and, for
// environments with a blur, builds the post-processed cache. The returned
// sampler is ready for concurrent use.
func (c *Config) BuildSampler(logger core.Logger) (*texture.Sampler, error) {
	tex, err := c.BuildTexture()
	if err != nil {
		return nil, err
	}
	s := texture.NewSampler(tex, c.Adjustments, logger)
	if c.Environment != nil && c.Environment.Blur > 0 {
		s.PostProcessedBlur(c.Environment.Blur)
	} else if c.Output.UsePostprocessed {
		s.PostProcessedCreate()
	}
	return s, nil
}

// BakeOptions translates the output section into baker options
func (c *Config) BakeOptions() baker.Options {
	mode := baker.ModePlane
	if c.Environment != nil {
		mode = baker.ModeLatLong
	}
	return baker.Options{
		Width:            c.Output.Width,
		Height:           c.Output.Height,
		TileSize:         c.Output.TileSize,
		Workers:          c.Output.Workers,
		Mode:             mode,
		UsePostprocessed: c.Output.UsePostprocessed || (c.Environment != nil && c.Environment.Blur > 0),
	}
}
