// Package config loads the optional carnival.yaml from the working
// directory.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	Filename = "carnival.yaml"
	// EnvPath overrides the config location.
	EnvPath = "CARNIVAL_CONFIG"
)

const (
	ModeDirect    = "direct"
	ModeOffscreen = "offscreen"

	LayoutDocked  = "docked"
	LayoutSidebar = "sidebar"

	ShapeTriangle = "triangle"
	ShapeQuad     = "quad"

	PrimitiveTriangles     = "triangles"
	PrimitiveTriangleStrip = "triangle_strip"
	PrimitiveLineStrip     = "line_strip"
)

type Shaders struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

type Config struct {
	Title       string     `yaml:"title"`
	Backend     string     `yaml:"backend"`
	RenderMode  string     `yaml:"render_mode"`
	Layout      string     `yaml:"layout"`
	IniFile     *string    `yaml:"ini_file"` // nil keeps the default, "" disables persistence
	VSync       bool       `yaml:"vsync"`
	MSAA        bool       `yaml:"msaa"`
	Viewports   bool       `yaml:"viewports"`
	OffsetScene bool       `yaml:"offset_scene"`
	Shape       string     `yaml:"shape"`
	Primitive   string     `yaml:"primitive"`
	Shaders     Shaders    `yaml:"shaders"`
	ClearColor  [4]float32 `yaml:"clear_color"`
	LogLevel    string     `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	ini := "imgui.ini"
	return Config{
		Title:      "Carnival",
		Backend:    "sdl",
		RenderMode: ModeOffscreen,
		Layout:     LayoutDocked,
		IniFile:    &ini,
		VSync:      true,
		MSAA:       true,
		Shape:      ShapeTriangle,
		Primitive:  PrimitiveLineStrip,
		Shaders: Shaders{
			Vertex:   "shaders/scene.vert",
			Fragment: "shaders/scene.frag",
		},
		ClearColor: [4]float32{0, 0, 0.4, 0},
		LogLevel:   "info",
	}
}

// Path returns the file Load reads.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return Filename
}

// Load reads path over Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no config file, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "failed to read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid %s", path)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.Backend = strings.ToLower(c.Backend)
	c.RenderMode = strings.ToLower(c.RenderMode)
	c.Layout = strings.ToLower(c.Layout)
	c.Shape = strings.ToLower(c.Shape)
	c.Primitive = strings.ToLower(c.Primitive)

	switch c.Backend {
	case "sdl", "glfw":
	default:
		return errors.Errorf("unknown backend %q", c.Backend)
	}
	switch c.RenderMode {
	case ModeDirect, ModeOffscreen:
	default:
		return errors.Errorf("unknown render_mode %q", c.RenderMode)
	}
	switch c.Layout {
	case LayoutDocked, LayoutSidebar:
	default:
		return errors.Errorf("unknown layout %q", c.Layout)
	}
	switch c.Shape {
	case ShapeTriangle, ShapeQuad:
	default:
		return errors.Errorf("unknown shape %q", c.Shape)
	}
	switch c.Primitive {
	case PrimitiveTriangles, PrimitiveTriangleStrip, PrimitiveLineStrip:
	default:
		return errors.Errorf("unknown primitive %q", c.Primitive)
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return errors.New("shaders.vertex and shaders.fragment are required")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Ini returns the GUI settings file, "" meaning disabled.
func (c Config) Ini() string {
	if c.IniFile == nil {
		return "imgui.ini"
	}
	return *c.IniFile
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, errors.Errorf("unknown log_level %q", c.LogLevel)
	}
	return l, nil
}
