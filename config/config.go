// Package config loads sketch settings from TOML files.
//
// A file may set any subset of keys; missing keys keep their defaults:
//
//	tool = "rect"
//
//	[canvas]
//	width = 1024
//	height = 768
//	background = "#ffffff"
//
//	[style]
//	line_color = "#ff0000"
//	guide_color = "#7cfc00"
//	handle_color = "#ffff00"
//	line_width = 2
//	guide_width = 1
//	point_radius = 3
//	handle_radius = 3
//	dash = [6, 4]
//
//	[input]
//	multi_select = "ctrl"
//	pan = "alt"
//	select_all = "ctrl"
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/sketch"
)

// ErrInvalid is wrapped by every validation error returned from Decode,
// Load and Validate.
var ErrInvalid = errors.New("config: invalid value")

// Canvas describes the drawing area.
type Canvas struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

// Style holds the pens, with colors as hex strings.
type Style struct {
	LineColor    string    `toml:"line_color"`
	GuideColor   string    `toml:"guide_color"`
	HandleColor  string    `toml:"handle_color"`
	LineWidth    float64   `toml:"line_width"`
	GuideWidth   float64   `toml:"guide_width"`
	PointRadius  float64   `toml:"point_radius"`
	HandleRadius float64   `toml:"handle_radius"`
	Dash         []float64 `toml:"dash"`
}

// Input names the modifier bound to each modal gesture. Modifier names are
// those accepted by sketch.ParseModifiers: "shift", "ctrl", "alt" and
// "meta" joined with "+", or "none" to unbind.
type Input struct {
	MultiSelect string `toml:"multi_select"`
	Pan         string `toml:"pan"`
	SelectAll   string `toml:"select_all"`
}

// Config is the decoded form of a sketch settings file.
type Config struct {
	Tool   string `toml:"tool"`
	Canvas Canvas `toml:"canvas"`
	Style  Style  `toml:"style"`
	Input  Input  `toml:"input"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Tool: "rect",
		Canvas: Canvas{
			Width:      1024,
			Height:     768,
			Background: "#ffffff",
		},
		Style: Style{
			LineColor:    "#ff0000",
			GuideColor:   "#7cfc00",
			HandleColor:  "#ffff00",
			LineWidth:    2,
			GuideWidth:   1,
			PointRadius:  3,
			HandleRadius: 3,
			Dash:         []float64{6, 4},
		},
		Input: Input{
			MultiSelect: "ctrl",
			Pan:         "alt",
			SelectAll:   "ctrl",
		},
	}
}

// Load reads and validates the TOML file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	sketch.Logger().Debug("config: loaded", "path", path, "tool", cfg.Tool)
	return cfg, nil
}

// Decode reads TOML from r over the defaults and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("config: line %d column %d: %w", row, col, err)
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field and joins all problems found.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Kind(); err != nil {
		errs = append(errs, err)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height))
	}
	if _, err := c.BackgroundColor(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.SketchStyle(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Bindings(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Kind returns the initial tool. An empty tool means none.
func (c Config) Kind() (sketch.Kind, error) {
	if c.Tool == "" || strings.EqualFold(c.Tool, "none") {
		return sketch.KindNone, nil
	}
	k, err := sketch.ParseKind(c.Tool)
	if err != nil {
		return sketch.KindNone, fmt.Errorf("%w: tool: %w", ErrInvalid, err)
	}
	return k, nil
}

// BackgroundColor returns the canvas clear color.
func (c Config) BackgroundColor() (gg.RGBA, error) {
	return ParseColor("canvas.background", c.Canvas.Background)
}

// SketchStyle converts the style table to pens.
func (c Config) SketchStyle() (sketch.Style, error) {
	s := c.Style
	var errs []error
	col := func(key, v string) color.Color {
		rgba, err := ParseColor(key, v)
		if err != nil {
			errs = append(errs, err)
		}
		return rgba.Color()
	}
	positive := func(key string, v float64) float64 {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %g", ErrInvalid, key, v))
		}
		return v
	}

	st := sketch.Style{
		LineColor:    col("style.line_color", s.LineColor),
		GuideColor:   col("style.guide_color", s.GuideColor),
		MarkerColor:  col("style.handle_color", s.HandleColor),
		LineWidth:    positive("style.line_width", s.LineWidth),
		GuideWidth:   positive("style.guide_width", s.GuideWidth),
		PointRadius:  positive("style.point_radius", s.PointRadius),
		MarkerRadius: positive("style.handle_radius", s.HandleRadius),
		Dash:         append([]float64(nil), s.Dash...),
	}
	for _, d := range s.Dash {
		if d < 0 {
			errs = append(errs, fmt.Errorf("%w: style.dash has negative length %g", ErrInvalid, d))
			break
		}
	}
	if err := errors.Join(errs...); err != nil {
		return sketch.Style{}, err
	}
	return st, nil
}

// Bindings converts the input table to modifier bindings.
func (c Config) Bindings() (sketch.Bindings, error) {
	var b sketch.Bindings
	var errs []error
	for _, f := range []struct {
		key string
		in  string
		out *sketch.Modifiers
	}{
		{"input.multi_select", c.Input.MultiSelect, &b.MultiSelect},
		{"input.pan", c.Input.Pan, &b.Pan},
		{"input.select_all", c.Input.SelectAll, &b.SelectAll},
	} {
		m, err := sketch.ParseModifiers(f.in)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalid, f.key, err))
			continue
		}
		*f.out = m
	}
	if b.MultiSelect != 0 && b.MultiSelect == b.Pan {
		errs = append(errs, fmt.Errorf("%w: input.multi_select and input.pan share a modifier", ErrInvalid))
	}
	if err := errors.Join(errs...); err != nil {
		return sketch.Bindings{}, err
	}
	return b, nil
}

// ControllerOptions converts the settings to controller options.
func (c Config) ControllerOptions() ([]sketch.ControllerOption, error) {
	k, err := c.Kind()
	if err != nil {
		return nil, err
	}
	st, err := c.SketchStyle()
	if err != nil {
		return nil, err
	}
	b, err := c.Bindings()
	if err != nil {
		return nil, err
	}
	return []sketch.ControllerOption{
		sketch.WithKind(k),
		sketch.WithStyle(st),
		sketch.WithBindings(b),
	}, nil
}

// ParseColor parses a "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa" color.
// key names the setting in error messages.
func ParseColor(key, s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %s: bad color %q", ErrInvalid, key, s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return gg.RGBA{}, fmt.Errorf("%w: %s: bad color %q", ErrInvalid, key, s)
		}
	}
	return gg.Hex(hex), nil
}
