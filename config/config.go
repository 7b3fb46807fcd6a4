// Package config loads isologo viewer and exporter settings from TOML or
// YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/isologo/logo"
)

// Common errors returned by Load and Validate.
var (
	// ErrUnknownFormat is returned for files that are neither TOML nor YAML.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrInvalidSize is returned for a non-positive canvas size.
	ErrInvalidSize = errors.New("config: invalid canvas size")

	// ErrInvalidFPS is returned for a non-positive frame rate.
	ErrInvalidFPS = errors.New("config: invalid fps")

	// ErrInvalidSmoothing is returned when smoothing is outside (0, 1].
	ErrInvalidSmoothing = errors.New("config: smoothing must be in (0, 1]")

	// ErrInvalidDragMode is returned for an unknown drag mode.
	ErrInvalidDragMode = errors.New("config: invalid drag mode")

	// ErrInvalidColor is returned for a malformed hex color.
	ErrInvalidColor = errors.New("config: invalid color")

	// ErrInvalidValue is returned for other out-of-range numbers.
	ErrInvalidValue = errors.New("config: invalid value")
)

// Config holds every user-tunable setting.
type Config struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
	FPS    int `toml:"fps" yaml:"fps"`

	// Scale is the block size in pixels; zero fits the canvas.
	Scale float64 `toml:"scale" yaml:"scale"`

	Smoothing   float64 `toml:"smoothing" yaml:"smoothing"`
	DragMode    string  `toml:"drag_mode" yaml:"drag_mode"`
	Sensitivity float64 `toml:"sensitivity" yaml:"sensitivity"`
	ShadowBlur  float64 `toml:"shadow_blur" yaml:"shadow_blur"`
	GridSpacing float64 `toml:"grid_spacing" yaml:"grid_spacing"`
	Intro       bool    `toml:"intro" yaml:"intro"`

	Palette Palette `toml:"palette" yaml:"palette"`
}

// Palette overrides logo colors with hex strings ("#rgb", "#rgba",
// "#rrggbb" or "#rrggbbaa"). Empty fields keep the stock color.
type Palette struct {
	Top        string `toml:"top,omitempty" yaml:"top,omitempty"`
	Left       string `toml:"left,omitempty" yaml:"left,omitempty"`
	Right      string `toml:"right,omitempty" yaml:"right,omitempty"`
	Edge       string `toml:"edge,omitempty" yaml:"edge,omitempty"`
	Shade      string `toml:"shade,omitempty" yaml:"shade,omitempty"`
	Highlight  string `toml:"highlight,omitempty" yaml:"highlight,omitempty"`
	Corner     string `toml:"corner,omitempty" yaml:"corner,omitempty"`
	Shadow     string `toml:"shadow,omitempty" yaml:"shadow,omitempty"`
	Background string `toml:"background,omitempty" yaml:"background,omitempty"`
	Grid       string `toml:"grid,omitempty" yaml:"grid,omitempty"`
}

// Default returns the stock settings.
func Default() *Config {
	return &Config{
		Width:       640,
		Height:      480,
		FPS:         60,
		Smoothing:   0.08,
		DragMode:    logo.DragXY.String(),
		Sensitivity: 0.01,
		ShadowBlur:  0.1,
		GridSpacing: 32,
		Intro:       true,
	}
}

// Load reads path over the defaults and validates the result. The format
// follows the extension: .toml, or .yaml / .yml.
// Unknown keys are errors.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			err = nil // empty document
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes c to path in the format given by its extension.
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		data, err = toml.Marshal(c)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.FPS)
	}
	if c.Smoothing <= 0 || c.Smoothing > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidSmoothing, c.Smoothing)
	}
	if _, ok := logo.ParseDragMode(c.DragMode); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidDragMode, c.DragMode)
	}
	for name, v := range map[string]float64{
		"scale":        c.Scale,
		"sensitivity":  c.Sensitivity,
		"shadow_blur":  c.ShadowBlur,
		"grid_spacing": c.GridSpacing,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s = %g", ErrInvalidValue, name, v)
		}
	}
	_, err := c.Palette.apply(logo.DefaultPalette())
	return err
}

// LogoPalette returns the stock palette with the configured overrides.
func (c *Config) LogoPalette() (logo.Palette, error) {
	return c.Palette.apply(logo.DefaultPalette())
}

// LogoOptions converts the settings into logo options.
func (c *Config) LogoOptions() ([]logo.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	p, err := c.LogoPalette()
	if err != nil {
		return nil, err
	}
	mode, _ := logo.ParseDragMode(c.DragMode)
	return []logo.Option{
		logo.WithPalette(p),
		logo.WithScale(c.Scale),
		logo.WithSmoothing(c.Smoothing),
		logo.WithDragMode(mode),
		logo.WithSensitivity(c.Sensitivity),
		logo.WithShadowBlur(c.ShadowBlur),
		logo.WithGrid(c.GridSpacing),
		logo.WithIntro(c.Intro),
	}, nil
}

func (p Palette) apply(base logo.Palette) (logo.Palette, error) {
	fields := []struct {
		name string
		hex  string
		dst  *gg.RGBA
	}{
		{"top", p.Top, &base.Top},
		{"left", p.Left, &base.Left},
		{"right", p.Right, &base.Right},
		{"edge", p.Edge, &base.Edge},
		{"shade", p.Shade, &base.Shade},
		{"highlight", p.Highlight, &base.Highlight},
		{"corner", p.Corner, &base.Corner},
		{"shadow", p.Shadow, &base.Shadow},
		{"background", p.Background, &base.Background},
		{"grid", p.Grid, &base.Grid},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := ParseColor(f.hex)
		if err != nil {
			return base, fmt.Errorf("palette.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return base, nil
}

// ParseColor parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa"; the leading
// '#' is optional.
func ParseColor(s string) (gg.RGBA, error) {
	c, err := gg.ParseHex(s)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}
	return c, nil
}
