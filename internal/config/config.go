// Package config handles painter configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Projection names accepted in camera.projection.
const (
	ProjectionOrthographic = "orthographic"
	ProjectionPerspective  = "perspective"
)

// Shape names accepted in mesh.shape.
const (
	ShapeSphere = "sphere"
	ShapeBox    = "box"
	ShapeTorus  = "torus"
)

// Config holds all painter settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Brush   BrushConfig   `yaml:"brush"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Paint   PaintConfig   `yaml:"paint"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds camera projection and gesture speeds.
type CameraConfig struct {
	Projection  string  `yaml:"projection"` // orthographic or perspective
	FOV         float32 `yaml:"fov"`        // vertical, degrees, perspective only
	RotateSpeed float32 `yaml:"rotate_speed"`
	PanSpeed    float32 `yaml:"pan_speed"`
	ZoomSpeed   float32 `yaml:"zoom_speed"`
}

// BrushConfig holds paint brush settings.
type BrushConfig struct {
	Radius float32 `yaml:"radius"` // pixels
	Color  string  `yaml:"color"`  // hex #rrggbb
}

// MeshConfig selects the procedural mesh to paint on.
type MeshConfig struct {
	Shape    string  `yaml:"shape"` // sphere, box or torus
	Radius   float32 `yaml:"radius"`
	Segments int     `yaml:"segments"`
}

// PaintConfig holds canvas colors and optional seeding.
type PaintConfig struct {
	Background string `yaml:"background"` // window clear color
	Canvas     string `yaml:"canvas"`     // initial paint surface color
	SeedImage  string `yaml:"seed_image"` // optional PNG/BMP preloaded onto the canvas
}

// ExportConfig holds painting export settings.
type ExportConfig struct {
	Dir         string `yaml:"dir"`
	Prefix      string `yaml:"prefix"`
	OnStrokeEnd bool   `yaml:"on_stroke_end"` // export after every finished stroke
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Chameleon",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			Projection:  ProjectionOrthographic,
			FOV:         45,
			RotateSpeed: 1.0,
			PanSpeed:    0.3,
			ZoomSpeed:   1.2,
		},
		Brush: BrushConfig{
			Radius: 16,
			Color:  "#cc3333",
		},
		Mesh: MeshConfig{
			Shape:    ShapeSphere,
			Radius:   1.0,
			Segments: 32,
		},
		Paint: PaintConfig{
			Background: "#1a1d24",
			Canvas:     "#ffffff",
			SeedImage:  "",
		},
		Export: ExportConfig{
			Dir:         "paintings",
			Prefix:      "painting",
			OnStrokeEnd: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the config for values the painter cannot start with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d: dimensions must be positive", c.Window.Width, c.Window.Height)
	}
	switch c.Camera.Projection {
	case ProjectionOrthographic, ProjectionPerspective:
	default:
		return fmt.Errorf("camera projection %q: must be %q or %q",
			c.Camera.Projection, ProjectionOrthographic, ProjectionPerspective)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov %v: must be in (0, 180)", c.Camera.FOV)
	}
	if c.Brush.Radius <= 0 {
		return fmt.Errorf("brush radius %v: must be positive", c.Brush.Radius)
	}
	if _, err := ParseHexColor(c.Brush.Color); err != nil {
		return fmt.Errorf("brush color: %w", err)
	}
	switch c.Mesh.Shape {
	case ShapeSphere, ShapeBox, ShapeTorus:
	default:
		return fmt.Errorf("mesh shape %q: must be %q, %q or %q",
			c.Mesh.Shape, ShapeSphere, ShapeBox, ShapeTorus)
	}
	if c.Mesh.Radius <= 0 {
		return fmt.Errorf("mesh radius %v: must be positive", c.Mesh.Radius)
	}
	if c.Mesh.Segments < 3 {
		return fmt.Errorf("mesh segments %d: need at least 3", c.Mesh.Segments)
	}
	if _, err := ParseHexColor(c.Paint.Background); err != nil {
		return fmt.Errorf("paint background: %w", err)
	}
	if _, err := ParseHexColor(c.Paint.Canvas); err != nil {
		return fmt.Errorf("paint canvas: %w", err)
	}
	return nil
}

// ParseHexColor parses a #rrggbb color string.
func ParseHexColor(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") || len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
